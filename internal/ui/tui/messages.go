package tui

import "github.com/aalvaropc/linkcheck/internal/domain"

// batchEventMsg carries one event of the running batch.
type batchEventMsg struct {
	ev domain.Event
}

// batchDoneMsg is sent once the batch task has finished.
type batchDoneMsg struct {
	outcome domain.BatchOutcome
	err     error
}

type exportDoneMsg struct {
	partition domain.Partition
	path      string
	saved     string
	err       error
}

type fileLoadedMsg struct {
	path string
	text string
	err  error
}
