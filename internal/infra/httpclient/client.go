package httpclient

import (
	"net"
	"net/http"
	"time"

	"github.com/aalvaropc/linkcheck/internal/domain"
)

// Config tunes the shared *http.Client used by the prober.
type Config struct {
	// Total timeout for one probe (includes redirects and reading the body).
	// A context deadline can still override this.
	Timeout time.Duration

	// UserAgent is sent on every request when non-empty.
	UserAgent string

	// Transport / dial timeouts.
	DialTimeout     time.Duration
	KeepAlive       time.Duration
	TLSHandshake    time.Duration
	ResponseHeader  time.Duration
	ExpectContinue  time.Duration
	IdleConnTimeout time.Duration

	MaxIdleConns        int
	MaxIdleConnsPerHost int
}

func DefaultConfig() Config {
	return Config{
		Timeout:             10 * time.Second,
		DialTimeout:         5 * time.Second,
		KeepAlive:           30 * time.Second,
		TLSHandshake:        5 * time.Second,
		ResponseHeader:      10 * time.Second,
		ExpectContinue:      1 * time.Second,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
	}
}

// FromProbe derives a client Config from the probe settings of linkcheck.yaml.
func FromProbe(p domain.ProbeConfig) Config {
	cfg := DefaultConfig()
	if p.Timeout > 0 {
		cfg.Timeout = p.Timeout
		if cfg.ResponseHeader > p.Timeout {
			cfg.ResponseHeader = p.Timeout
		}
	}
	cfg.UserAgent = p.UserAgent
	return cfg
}

func New(cfg Config) *http.Client {
	dialer := &net.Dialer{
		Timeout:   cfg.DialTimeout,
		KeepAlive: cfg.KeepAlive,
	}

	tr := &http.Transport{
		Proxy:       http.ProxyFromEnvironment,
		DialContext: dialer.DialContext,

		ForceAttemptHTTP2: true,

		MaxIdleConns:        cfg.MaxIdleConns,
		MaxIdleConnsPerHost: cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:     cfg.IdleConnTimeout,

		TLSHandshakeTimeout:   cfg.TLSHandshake,
		ResponseHeaderTimeout: cfg.ResponseHeader,
		ExpectContinueTimeout: cfg.ExpectContinue,
	}

	var rt http.RoundTripper = tr
	if cfg.UserAgent != "" {
		rt = &userAgentTransport{base: tr, ua: cfg.UserAgent}
	}

	return &http.Client{
		Transport: rt,
		Timeout:   cfg.Timeout,
	}
}

type userAgentTransport struct {
	base http.RoundTripper
	ua   string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.base.RoundTrip(req)
	}
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.ua)
	return t.base.RoundTrip(r)
}
