package domain

import "fmt"

// FatalNoURLs is the reason carried by a FatalEvent when the input holds
// no usable URLs.
const FatalNoURLs = "no_urls"

// Event is emitted by a running batch. The set of events is closed:
// ProgressEvent, SummaryEvent and FatalEvent.
type Event interface {
	batchEvent()
}

// ProgressEvent is emitted once per probed URL, after the counters were
// updated with Result.
type ProgressEvent struct {
	Progress BatchProgress
	Result   CheckResult
}

// SummaryEvent is emitted once, after the last item of a batch.
type SummaryEvent struct {
	Total         int     `json:"total"`
	Working       int     `json:"working"`
	NotWorking    int     `json:"not_working"`
	WorkingPct    float64 `json:"working_pct"`
	NotWorkingPct float64 `json:"not_working_pct"`
}

// String renders the summary the way it is shown to users.
func (s SummaryEvent) String() string {
	return fmt.Sprintf("Working: %.2f%%, Not Working: %.2f%%", s.WorkingPct, s.NotWorkingPct)
}

// FatalEvent is emitted when a batch cannot start.
type FatalEvent struct {
	Reason string
}

func (ProgressEvent) batchEvent() {}
func (SummaryEvent) batchEvent()  {}
func (FatalEvent) batchEvent()    {}

// Observer receives batch events in emission order.
type Observer func(Event)
