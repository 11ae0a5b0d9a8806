package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/aalvaropc/linkcheck/internal/domain"
)

// ErrBatchRunning is returned by BatchTask.Start while another batch is in flight.
var ErrBatchRunning = errors.New("a batch is already running")

const defaultEventBuffer = 16

// BatchTask runs RunBatch on a worker goroutine and allows one batch at a time.
type BatchTask struct {
	runner *RunBatch

	mu      sync.Mutex
	running bool
}

func NewBatchTask(r *RunBatch) *BatchTask {
	return &BatchTask{runner: r}
}

// Running reports whether a batch is in flight.
func (bt *BatchTask) Running() bool {
	bt.mu.Lock()
	defer bt.mu.Unlock()
	return bt.running
}

// Task is a handle on one in-flight batch.
//
// Events must be drained (or the task canceled): the worker blocks on a full
// channel so no event is lost or reordered.
type Task struct {
	events chan domain.Event
	done   chan struct{}
	cancel context.CancelFunc

	outcome domain.BatchOutcome
	err     error
}

// Start launches a batch over text. The returned task's Events channel is
// closed after the last event, before Done is closed.
func (bt *BatchTask) Start(parent context.Context, text string) (*Task, error) {
	bt.mu.Lock()
	if bt.running {
		bt.mu.Unlock()
		return nil, ErrBatchRunning
	}
	bt.running = true
	bt.mu.Unlock()

	ctx, cancel := context.WithCancel(parent)
	t := &Task{
		events: make(chan domain.Event, defaultEventBuffer),
		done:   make(chan struct{}),
		cancel: cancel,
	}

	go func() {
		defer func() {
			cancel()
			close(t.events)

			bt.mu.Lock()
			bt.running = false
			bt.mu.Unlock()

			close(t.done)
		}()

		t.outcome, t.err = bt.runner.Execute(ctx, text, func(ev domain.Event) {
			select {
			case t.events <- ev:
			case <-ctx.Done():
			}
		})
	}()

	return t, nil
}

// Events delivers batch events in emission order.
func (t *Task) Events() <-chan domain.Event { return t.events }

// Done is closed once the batch has finished and the outcome is available.
func (t *Task) Done() <-chan struct{} { return t.done }

// Cancel stops the batch before its next probe.
func (t *Task) Cancel() { t.cancel() }

// Wait blocks until the batch finishes.
func (t *Task) Wait() (domain.BatchOutcome, error) {
	<-t.done
	return t.outcome, t.err
}
