package usecase

import (
	"io"
	"log/slog"
	"strings"

	"github.com/aalvaropc/linkcheck/internal/domain"
	"github.com/aalvaropc/linkcheck/internal/ports"
)

type ExportResults struct {
	exporter ports.Exporter
	log      *slog.Logger
}

type ExportOption func(*ExportResults)

func WithExportLogger(l *slog.Logger) ExportOption {
	return func(uc *ExportResults) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewExportResults(e ports.Exporter, opts ...ExportOption) *ExportResults {
	uc := &ExportResults{
		exporter: e,
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute writes one partition of out to path as a single URL column.
// An empty path means the user declined: nothing is written and no error is
// returned. saved is the file produced, or "" when the export was skipped.
func (uc *ExportResults) Execute(out domain.BatchOutcome, p domain.Partition, path string) (saved string, err error) {
	path = strings.TrimSpace(path)
	if path == "" {
		uc.log.Info("export.skipped", "partition", string(p))
		return "", nil
	}

	urls := out.URLs(p)
	saved, err = uc.exporter.Export(path, urls)
	if err != nil {
		uc.log.Error("export.failed", "partition", string(p), "path", path, "err", err)
		if domain.IsKind(err, domain.KindExport) {
			return "", err
		}
		return "", &domain.OpError{
			Op:   "export.results",
			Kind: domain.KindExport,
			Path: path,
			Err:  err,
		}
	}

	uc.log.Info("export.ok", "partition", string(p), "path", saved, "rows", len(urls))
	return saved, nil
}
