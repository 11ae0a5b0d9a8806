package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/linkcheck/internal/domain"
	"github.com/aalvaropc/linkcheck/internal/ports"
)

// RunBatch checks every URL of an input text, one after the other.
type RunBatch struct {
	prober ports.Prober
	store  ports.ArtifactStore
	log    *slog.Logger
	newID  func() string
	now    func() time.Time
}

type RunOption func(*RunBatch)

// WithArtifactStore saves every completed outcome. A nil store disables saving.
func WithArtifactStore(s ports.ArtifactStore) RunOption {
	return func(uc *RunBatch) { uc.store = s }
}

func WithLogger(l *slog.Logger) RunOption {
	return func(uc *RunBatch) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithIDGenerator overrides batch ID generation (useful for tests).
func WithIDGenerator(gen func() string) RunOption {
	return func(uc *RunBatch) { uc.newID = gen }
}

// WithClock overrides the clock (useful for tests).
func WithClock(now func() time.Time) RunOption {
	return func(uc *RunBatch) { uc.now = now }
}

func NewRunBatch(p ports.Prober, opts ...RunOption) *RunBatch {
	uc := &RunBatch{
		prober: p,
		log:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
		newID:  uuid.NewString,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute runs one batch over text and returns the ordered outcome.
//
// Events reach observe in emission order: one ProgressEvent per URL, then a
// SummaryEvent. When text holds no URL a FatalEvent is emitted and a
// KindNoURLs error is returned before any probe. A failed probe never stops
// the batch; a canceled ctx does, returning the partial outcome and ctx.Err()
// without a summary.
func (uc *RunBatch) Execute(ctx context.Context, text string, observe domain.Observer) (domain.BatchOutcome, error) {
	entries := domain.NewEntries(text)
	if len(entries) == 0 {
		uc.log.Warn("batch.no_urls")
		emit(observe, domain.FatalEvent{Reason: domain.FatalNoURLs})
		return domain.BatchOutcome{}, &domain.OpError{
			Op:   "batch.run",
			Kind: domain.KindNoURLs,
			Err:  domain.ErrNoURLs,
		}
	}

	out := domain.BatchOutcome{
		ID:        uc.newID(),
		StartedAt: uc.now(),
		Results:   make([]domain.CheckResult, 0, len(entries)),
	}
	progress := domain.NewBatchProgress(len(entries))

	uc.log.Info("batch.start", "id", out.ID, "total", progress.Total)

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return uc.abort(out, progress, err)
		}

		res := uc.prober.Probe(ctx, e.URL)

		// A probe cut short by cancellation says nothing about the URL.
		if res.FailureKind == domain.FailureCanceled && ctx.Err() != nil {
			return uc.abort(out, progress, ctx.Err())
		}

		out.Results = append(out.Results, res)
		progress.Record(res)

		if res.IsWorking() {
			uc.log.Debug("probe.ok", "url", res.URL, "status", res.StatusCode, "latency_ms", res.LatencyMS)
		} else {
			uc.log.Warn("probe.failed",
				"url", res.URL,
				"status", res.StatusCode,
				"kind", string(res.FailureKind),
				"latency_ms", res.LatencyMS,
			)
		}

		emit(observe, domain.ProgressEvent{Progress: progress, Result: res})
	}

	out.EndedAt = uc.now()
	summary := progress.Summarize()
	emit(observe, summary)

	uc.log.Info("batch.done",
		"id", out.ID,
		"total", summary.Total,
		"working", summary.Working,
		"not_working", summary.NotWorking,
	)

	if uc.store != nil {
		id, err := uc.store.SaveOutcome(out)
		if err != nil {
			uc.log.Error("batch.save.failed", "id", out.ID, "err", err)
			return out, err
		}
		uc.log.Info("batch.saved", "id", out.ID, "artifact", id)
	}

	return out, nil
}

func (uc *RunBatch) abort(out domain.BatchOutcome, p domain.BatchProgress, err error) (domain.BatchOutcome, error) {
	out.EndedAt = uc.now()
	uc.log.Warn("batch.canceled", "id", out.ID, "processed", p.Processed, "total", p.Total, "err", err)
	return out, err
}

func emit(observe domain.Observer, ev domain.Event) {
	if observe != nil {
		observe(ev)
	}
}
