package httpclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aalvaropc/linkcheck/internal/domain"
)

func TestDefaultConfig_TenSecondTimeout(t *testing.T) {
	if got := DefaultConfig().Timeout; got != 10*time.Second {
		t.Fatalf("expected 10s, got %s", got)
	}
}

func TestFromProbe_ClampsHeaderTimeout(t *testing.T) {
	cfg := FromProbe(domain.ProbeConfig{Timeout: 2 * time.Second, UserAgent: "x"})
	if cfg.Timeout != 2*time.Second {
		t.Fatalf("expected timeout=2s, got %s", cfg.Timeout)
	}
	if cfg.ResponseHeader != 2*time.Second {
		t.Fatalf("expected response header timeout clamped to 2s, got %s", cfg.ResponseHeader)
	}
	if cfg.UserAgent != "x" {
		t.Fatalf("expected user agent x, got %q", cfg.UserAgent)
	}
}

func TestFromProbe_ZeroTimeoutKeepsDefault(t *testing.T) {
	cfg := FromProbe(domain.ProbeConfig{})
	if cfg.Timeout != 10*time.Second {
		t.Fatalf("expected default timeout, got %s", cfg.Timeout)
	}
}

func TestNew_SetsUserAgent(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.UserAgent = "linkcheck/test"
	resp, err := New(cfg).Get(srv.URL)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	resp.Body.Close()

	if got != "linkcheck/test" {
		t.Fatalf("expected user agent linkcheck/test, got %q", got)
	}
}

func TestNew_TimesOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.Timeout = 20 * time.Millisecond
	resp, err := New(cfg).Get(srv.URL)
	if err == nil {
		resp.Body.Close()
		t.Fatalf("expected timeout error")
	}
	if kind := domain.ClassifyFailure(err); kind != domain.FailureTimeout {
		t.Fatalf("expected timeout kind, got %s (%v)", kind, err)
	}
}
