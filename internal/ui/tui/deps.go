package tui

import (
	"log/slog"

	"github.com/aalvaropc/linkcheck/internal/ports"
	"github.com/aalvaropc/linkcheck/internal/usecase"
)

type Deps struct {
	// WorkspaceRoot is where exports default to; empty means the working directory.
	WorkspaceRoot string
	ExportsDir    string

	Batch  *usecase.BatchTask
	Export *usecase.ExportResults
	Source ports.URLSource

	Logger  *slog.Logger
	// LogPath is shown in the header in debug mode.
	LogPath string
	Debug   bool
}

func (d Deps) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.Default()
	}
	return d.Logger
}
