package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aalvaropc/linkcheck/internal/domain"
)

func drain(t *testing.T, task *Task) []domain.Event {
	t.Helper()
	var out []domain.Event
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-task.Events():
			if !ok {
				return out
			}
			out = append(out, ev)
		case <-timeout:
			t.Fatalf("timed out draining events")
		}
	}
}

func TestBatchTask_DeliversEventsInOrderThenCompletes(t *testing.T) {
	p := newScriptedProber(map[string]int{"http://a": 200, "http://c": 200})
	bt := NewBatchTask(NewRunBatch(p))

	task, err := bt.Start(context.Background(), "a b c")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	events := drain(t, task)
	if len(events) != 4 {
		t.Fatalf("expected 3 progress + 1 summary, got %d events", len(events))
	}
	for i := 0; i < 3; i++ {
		ev, ok := events[i].(domain.ProgressEvent)
		if !ok {
			t.Fatalf("event %d: expected progress, got %#v", i, events[i])
		}
		if ev.Progress.Processed != i+1 {
			t.Fatalf("event %d: expected processed=%d, got %d", i, i+1, ev.Progress.Processed)
		}
	}
	if _, ok := events[3].(domain.SummaryEvent); !ok {
		t.Fatalf("expected summary last, got %#v", events[3])
	}

	out, err := task.Wait()
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if len(out.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(out.Results))
	}
	if bt.Running() {
		t.Fatalf("expected task to be idle after completion")
	}
}

func TestBatchTask_RejectsConcurrentStart(t *testing.T) {
	p := newBlockingProber()
	bt := NewBatchTask(NewRunBatch(p))

	task, err := bt.Start(context.Background(), "a")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	<-p.started

	if _, err := bt.Start(context.Background(), "b"); !errors.Is(err, ErrBatchRunning) {
		t.Fatalf("expected ErrBatchRunning, got %v", err)
	}

	close(p.release)
	drain(t, task)
	if _, err := task.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}

	again, err := bt.Start(context.Background(), "c")
	if err != nil {
		t.Fatalf("expected a new batch to start after completion, got %v", err)
	}
	drain(t, again)
	_, _ = again.Wait()
}

func TestBatchTask_Cancel(t *testing.T) {
	p := newBlockingProber()
	bt := NewBatchTask(NewRunBatch(p))

	task, err := bt.Start(context.Background(), "a b c")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	<-p.started
	task.Cancel()

	events := drain(t, task)
	for _, ev := range events {
		if _, ok := ev.(domain.SummaryEvent); ok {
			t.Fatalf("expected no summary after cancel")
		}
	}

	out, err := task.Wait()
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(out.Results) != 0 {
		t.Fatalf("expected canceled probe to be discarded, got %+v", out.Results)
	}

	select {
	case <-task.Done():
	default:
		t.Fatalf("expected Done to be closed")
	}
}

func TestBatchTask_EmptyInputReportsFatal(t *testing.T) {
	bt := NewBatchTask(NewRunBatch(newScriptedProber(nil)))

	task, err := bt.Start(context.Background(), "  ")
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	events := drain(t, task)
	if len(events) != 1 {
		t.Fatalf("expected one event, got %d", len(events))
	}
	if fe, ok := events[0].(domain.FatalEvent); !ok || fe.Reason != domain.FatalNoURLs {
		t.Fatalf("expected fatal no_urls, got %#v", events[0])
	}

	if _, err := task.Wait(); !domain.IsKind(err, domain.KindNoURLs) {
		t.Fatalf("expected KindNoURLs, got %v", err)
	}
}
