package domain

import "math"

// BatchProgress holds the running counters of a batch. It is owned by the
// batch worker; observers receive copies inside events.
type BatchProgress struct {
	Total      int `json:"total"`
	Processed  int `json:"processed"`
	Working    int `json:"working"`
	NotWorking int `json:"not_working"`
}

// NewBatchProgress returns zeroed counters for a batch of total items.
func NewBatchProgress(total int) BatchProgress {
	return BatchProgress{Total: total}
}

// Record counts one more processed result.
func (p *BatchProgress) Record(r CheckResult) {
	p.Processed++
	if r.IsWorking() {
		p.Working++
	} else {
		p.NotWorking++
	}
}

// Percent is Processed/Total*100, or 0 for an empty batch.
func (p BatchProgress) Percent() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Processed) / float64(p.Total) * 100
}

// Done reports whether every item has been processed.
func (p BatchProgress) Done() bool {
	return p.Total > 0 && p.Processed == p.Total
}

// Summarize computes the end-of-batch percentages against Total, rounded to
// two decimals.
func (p BatchProgress) Summarize() SummaryEvent {
	s := SummaryEvent{
		Total:      p.Total,
		Working:    p.Working,
		NotWorking: p.NotWorking,
	}
	if p.Total > 0 {
		s.WorkingPct = round2(float64(p.Working) / float64(p.Total) * 100)
		s.NotWorkingPct = round2(float64(p.NotWorking) / float64(p.Total) * 100)
	}
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
