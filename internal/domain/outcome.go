package domain

import "time"

// Partition selects one side of a batch outcome.
type Partition string

const (
	PartitionWorking    Partition = "working"
	PartitionNotWorking Partition = "not_working"
)

// Label is the human name of the partition ("Working", "Not Working").
func (p Partition) Label() string {
	if p == PartitionWorking {
		return "Working"
	}
	return "Not Working"
}

// DefaultExportName is the file name proposed for exporting the partition.
func (p Partition) DefaultExportName() string {
	if p == PartitionWorking {
		return "Working_results.xlsx"
	}
	return "NotWorking_results.xlsx"
}

// FailedURL pairs a NotWorking URL with its reason.
type FailedURL struct {
	URL    string
	Reason string
}

// BatchOutcome is the ordered sequence of results of one batch.
type BatchOutcome struct {
	ID        string        `json:"id"`
	StartedAt time.Time     `json:"started_at"`
	EndedAt   time.Time     `json:"ended_at"`
	Results   []CheckResult `json:"results"`
}

// Working returns the Working URLs in original order.
func (o BatchOutcome) Working() []string {
	out := []string{}
	for _, r := range o.Results {
		if r.IsWorking() {
			out = append(out, r.URL)
		}
	}
	return out
}

// NotWorking returns the NotWorking URLs and reasons in original order.
func (o BatchOutcome) NotWorking() []FailedURL {
	out := []FailedURL{}
	for _, r := range o.Results {
		if !r.IsWorking() {
			out = append(out, FailedURL{URL: r.URL, Reason: r.Reason})
		}
	}
	return out
}

// URLs returns the URL column of a partition.
func (o BatchOutcome) URLs(p Partition) []string {
	if p == PartitionWorking {
		return o.Working()
	}
	failed := o.NotWorking()
	out := make([]string, 0, len(failed))
	for _, f := range failed {
		out = append(out, f.URL)
	}
	return out
}

// Progress recomputes the counters from the results.
func (o BatchOutcome) Progress() BatchProgress {
	p := NewBatchProgress(len(o.Results))
	for _, r := range o.Results {
		p.Record(r)
	}
	return p
}

// Summary is Progress().Summarize().
func (o BatchOutcome) Summary() SummaryEvent {
	return o.Progress().Summarize()
}
