package tui

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/linkcheck/internal/domain"
	"github.com/aalvaropc/linkcheck/internal/usecase"
)

// startBatchAsync launches the batch on the task's worker goroutine and
// returns the command that pumps its first event into the program.
func startBatchAsync(deps Deps, text string) (*usecase.Task, tea.Cmd, error) {
	if deps.Batch == nil {
		return nil, nil, errors.New("batch task is nil")
	}

	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	log.Info("tui.batch.start", "chars", len(text), "debug", deps.Debug)

	task, err := deps.Batch.Start(context.Background(), text)
	if err != nil {
		return nil, nil, err
	}
	return task, listenBatch(task), nil
}

// listenBatch waits for the next event. It must be re-armed after every
// batchEventMsg; once the channel closes it reports the final outcome.
func listenBatch(task *usecase.Task) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-task.Events()
		if !ok {
			out, err := task.Wait()
			return batchDoneMsg{outcome: out, err: err}
		}
		return batchEventMsg{ev: ev}
	}
}

func cmdExport(deps Deps, out domain.BatchOutcome, p domain.Partition, path string) tea.Cmd {
	return func() tea.Msg {
		if deps.Export == nil {
			return exportDoneMsg{partition: p, path: path, err: errors.New("exporter is nil")}
		}
		saved, err := deps.Export.Execute(out, p, path)
		return exportDoneMsg{partition: p, path: path, saved: saved, err: err}
	}
}

func cmdLoadFile(deps Deps, path string) tea.Cmd {
	return func() tea.Msg {
		if deps.Source == nil {
			return fileLoadedMsg{path: path, err: errors.New("url source is nil")}
		}
		text, err := deps.Source.Load(path)
		return fileLoadedMsg{path: path, text: text, err: err}
	}
}

// defaultExportPath proposes <root>/<exports_dir>/<Partition default name>.
func defaultExportPath(deps Deps, p domain.Partition) string {
	dir := strings.TrimSpace(deps.ExportsDir)
	if dir != "" && !filepath.IsAbs(dir) && deps.WorkspaceRoot != "" {
		dir = filepath.Join(deps.WorkspaceRoot, dir)
	}
	return filepath.Join(dir, p.DefaultExportName())
}
