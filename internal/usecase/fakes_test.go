package usecase

import (
	"context"
	"sync"

	"github.com/aalvaropc/linkcheck/internal/domain"
	"github.com/aalvaropc/linkcheck/internal/ports"
)

// scriptedProber answers from a URL -> status table; unknown URLs fail with a DNS error.
type scriptedProber struct {
	mu     sync.Mutex
	status map[string]int
	calls  []string
}

func newScriptedProber(status map[string]int) *scriptedProber {
	return &scriptedProber{status: status}
}

func (p *scriptedProber) Probe(_ context.Context, url string) domain.CheckResult {
	p.mu.Lock()
	p.calls = append(p.calls, url)
	code, ok := p.status[url]
	p.mu.Unlock()

	switch {
	case !ok:
		return domain.FailedResult(url, domain.FailureDNS, 0)
	case code == 200:
		return domain.WorkingResult(url, code)
	default:
		return domain.FailedResult(url, domain.FailureHTTP, code)
	}
}

func (p *scriptedProber) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.calls))
	copy(out, p.calls)
	return out
}

// blockingProber waits for release (or ctx) before answering Working.
type blockingProber struct {
	started chan struct{}
	release chan struct{}
}

func newBlockingProber() *blockingProber {
	return &blockingProber{
		started: make(chan struct{}, 100),
		release: make(chan struct{}),
	}
}

func (p *blockingProber) Probe(ctx context.Context, url string) domain.CheckResult {
	p.started <- struct{}{}
	select {
	case <-p.release:
		return domain.WorkingResult(url, 200)
	case <-ctx.Done():
		return domain.FailedResult(url, domain.FailureCanceled, 0)
	}
}

// cancelOnFirstProber cancels the batch context during its first call.
type cancelOnFirstProber struct {
	cancel context.CancelFunc
	calls  int
}

func (p *cancelOnFirstProber) Probe(_ context.Context, url string) domain.CheckResult {
	p.calls++
	if p.calls == 1 {
		p.cancel()
	}
	return domain.WorkingResult(url, 200)
}

type eventRecorder struct {
	mu     sync.Mutex
	events []domain.Event
}

func (r *eventRecorder) observe(ev domain.Event) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}

func (r *eventRecorder) progress() []domain.ProgressEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.ProgressEvent
	for _, ev := range r.events {
		if p, ok := ev.(domain.ProgressEvent); ok {
			out = append(out, p)
		}
	}
	return out
}

type fakeStore struct {
	saved bool
	last  domain.BatchOutcome
}

func (s *fakeStore) SaveOutcome(out domain.BatchOutcome) (string, error) {
	s.saved = true
	s.last = out
	return "20260101T000000Z_batch", nil
}

type errStore struct{ err error }

func (s *errStore) SaveOutcome(_ domain.BatchOutcome) (string, error) { return "", s.err }

type fakeExporter struct {
	path string
	urls []string
	ext  string
	err  error
}

func (f *fakeExporter) Export(path string, urls []string) (string, error) {
	f.path = path
	f.urls = urls
	if f.err != nil {
		return "", f.err
	}
	return path + f.ext, nil
}

var (
	_ ports.Prober        = (*scriptedProber)(nil)
	_ ports.Prober        = (*blockingProber)(nil)
	_ ports.Prober        = (*cancelOnFirstProber)(nil)
	_ ports.ArtifactStore = (*fakeStore)(nil)
	_ ports.ArtifactStore = (*errStore)(nil)
	_ ports.Exporter      = (*fakeExporter)(nil)
)
