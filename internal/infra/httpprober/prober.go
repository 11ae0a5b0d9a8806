package httpprober

import (
	"context"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/aalvaropc/linkcheck/internal/domain"
	"github.com/aalvaropc/linkcheck/internal/ports"
)

const defaultMaxBodyBytes = 256 * 1024 // 256KB

// Prober issues one GET per URL and classifies the outcome.
type Prober struct {
	client       *http.Client
	maxBodyBytes int64
	userAgent    string
	limiter      *rate.Limiter
	detailed     bool
	now          func() time.Time
}

type Option func(*Prober)

// WithMaxBodyBytes bounds how much of a response body is drained.
func WithMaxBodyBytes(n int64) Option {
	return func(p *Prober) {
		if n > 0 {
			p.maxBodyBytes = n
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(p *Prober) { p.userAgent = ua }
}

// WithRateLimit paces probes to at most perSecond requests per second.
// A value <= 0 disables pacing.
func WithRateLimit(perSecond float64) Option {
	return func(p *Prober) {
		if perSecond <= 0 {
			p.limiter = nil
			return
		}
		p.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// WithDetailedReasons replaces the generic "Failed to load" reason with the
// actual failure ("HTTP 404", "dns: no such host", ...).
func WithDetailedReasons(on bool) Option {
	return func(p *Prober) { p.detailed = on }
}

func New(client *http.Client, opts ...Option) *Prober {
	p := &Prober{
		client:       client,
		maxBodyBytes: defaultMaxBodyBytes,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FromProbe builds a Prober from the probe section of linkcheck.yaml.
func FromProbe(client *http.Client, cfg domain.ProbeConfig) *Prober {
	return New(client,
		WithMaxBodyBytes(cfg.MaxBodyBytes),
		WithUserAgent(cfg.UserAgent),
		WithRateLimit(cfg.RatePerSecond),
		WithDetailedReasons(cfg.DetailedReasons),
	)
}

var _ ports.Prober = (*Prober)(nil)

// Probe never returns an error: every failure is folded into the result.
func (p *Prober) Probe(ctx context.Context, url string) domain.CheckResult {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return p.failed(url, domain.ClassifyFailure(ctxErr(ctx, err)), 0, err, 0)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return p.failed(url, domain.FailureInvalidURL, 0, err, 0)
	}
	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}

	start := p.now()
	resp, err := p.client.Do(req)
	if err != nil {
		return p.failed(url, domain.ClassifyFailure(err), 0, err, p.since(start))
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused; content is irrelevant.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, p.maxBodyBytes))
	lat := p.since(start)

	if resp.StatusCode != http.StatusOK {
		return p.failed(url, domain.FailureHTTP, resp.StatusCode, nil, lat)
	}

	res := domain.WorkingResult(url, resp.StatusCode)
	res.LatencyMS = lat
	return res
}

func (p *Prober) failed(url string, kind domain.FailureKind, code int, err error, lat int64) domain.CheckResult {
	res := domain.FailedResult(url, kind, code)
	res.LatencyMS = lat
	if p.detailed {
		res.Reason = domain.DescribeFailure(kind, code, err)
	}
	return res
}

func (p *Prober) since(start time.Time) int64 {
	return p.now().Sub(start).Milliseconds()
}

// rate.Limiter reports "would exceed context deadline" without wrapping ctx.Err().
func ctxErr(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
