package xlsxexport

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/aalvaropc/linkcheck/internal/domain"
	"github.com/aalvaropc/linkcheck/internal/ports"
)

const (
	sheet  = "Sheet1"
	header = "URL"
	ext    = ".xlsx"
)

// Writer writes URL lists as single-column .xlsx workbooks.
type Writer struct{}

func New() *Writer { return &Writer{} }

var _ ports.Exporter = (*Writer)(nil)

// ResolvePath appends .xlsx when path has no extension.
func ResolvePath(path string) string {
	if filepath.Ext(path) == "" {
		return path + ext
	}
	return path
}

// Export writes a "URL" header row followed by one row per URL, in order,
// and returns the path actually written (see ResolvePath). An existing file
// at that path is replaced.
func (w *Writer) Export(path string, urls []string) (string, error) {
	path = ResolvePath(path)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", exportErr("xlsx.mkdir", dir, err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return "", exportErr("xlsx.stream", path, err)
	}
	if err := sw.SetRow("A1", []any{header}); err != nil {
		return "", exportErr("xlsx.row", path, err)
	}
	for i, u := range urls {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", exportErr("xlsx.row", path, err)
		}
		if err := sw.SetRow(cell, []any{u}); err != nil {
			return "", exportErr("xlsx.row", path, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return "", exportErr("xlsx.flush", path, err)
	}

	// Atomic-ish write: tmp then rename.
	tmp, err := os.CreateTemp(filepath.Dir(path), ".linkcheck-*.xlsx")
	if err != nil {
		return "", exportErr("xlsx.write", path, err)
	}
	tmpPath := tmp.Name()

	if err := f.Write(tmp); err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		return "", exportErr("xlsx.write", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", exportErr("xlsx.write", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return "", exportErr("xlsx.rename", path, err)
	}
	return path, nil
}

func exportErr(op, path string, err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindExport,
		Path: path,
		Err:  err,
	}
}
