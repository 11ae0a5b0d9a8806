package domain

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"
)

// FailureKind is a coarse classification of why a probe did not yield 200.
type FailureKind string

const (
	FailureTimeout    FailureKind = "timeout"
	FailureDNS        FailureKind = "dns"
	FailureConn       FailureKind = "connection"
	FailureTLS        FailureKind = "tls"
	FailureInvalidURL FailureKind = "invalid_url"
	FailureHTTP       FailureKind = "http"
	FailureCanceled   FailureKind = "canceled"
	FailureUnknown    FailureKind = "unknown"
)

// ClassifyFailure maps a transport error to a FailureKind. It unwraps
// *url.Error and *net.OpError chains.
func ClassifyFailure(err error) FailureKind {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.Canceled) {
		return FailureCanceled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return FailureTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		if dnsErr.IsTimeout {
			return FailureTimeout
		}
		return FailureDNS
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return FailureTimeout
	}

	if isTLSError(err) {
		return FailureTLS
	}

	var ue *url.Error
	if errors.As(err, &ue) && ue.Op == "parse" {
		return FailureInvalidURL
	}
	msg := err.Error()
	if strings.Contains(msg, "unsupported protocol scheme") || strings.Contains(msg, "no Host in request URL") {
		return FailureInvalidURL
	}

	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return FailureConn
	}
	var oe *net.OpError
	if errors.As(err, &oe) {
		return FailureConn
	}

	return FailureUnknown
}

func isTLSError(err error) bool {
	var certErr *tls.CertificateVerificationError
	if errors.As(err, &certErr) {
		return true
	}
	var rhErr tls.RecordHeaderError
	if errors.As(err, &rhErr) {
		return true
	}
	var uaErr x509.UnknownAuthorityError
	if errors.As(err, &uaErr) {
		return true
	}
	var hnErr x509.HostnameError
	if errors.As(err, &hnErr) {
		return true
	}
	var ciErr x509.CertificateInvalidError
	return errors.As(err, &ciErr)
}

// DescribeFailure renders a detailed reason: "HTTP 404" for status
// failures, "<kind>: <error>" for transport failures.
func DescribeFailure(kind FailureKind, statusCode int, err error) string {
	if kind == FailureHTTP && statusCode != 0 {
		return fmt.Sprintf("HTTP %d", statusCode)
	}
	if err == nil {
		if kind == "" {
			return ReasonFailedToLoad
		}
		return string(kind)
	}
	return fmt.Sprintf("%s: %s", kind, rootMessage(err))
}

// rootMessage drops the "Get \"url\": " prefix that *url.Error adds.
func rootMessage(err error) string {
	var ue *url.Error
	if errors.As(err, &ue) && ue.Err != nil {
		return ue.Err.Error()
	}
	return err.Error()
}
