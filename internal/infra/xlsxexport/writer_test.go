package xlsxexport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/aalvaropc/linkcheck/internal/domain"
)

func readColumn(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func TestExport_WritesHeaderAndRowsInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Working_results.xlsx")

	saved, err := New().Export(path, []string{"http://a.com", "https://b.com/x?y=1"})
	require.NoError(t, err)
	require.Equal(t, path, saved)

	rows := readColumn(t, path)
	require.Equal(t, [][]string{
		{"URL"},
		{"http://a.com"},
		{"https://b.com/x?y=1"},
	}, rows)
}

func TestExport_EmptyListWritesHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	_, err := New().Export(path, nil)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"URL"}}, readColumn(t, path))
}

func TestExport_AppendsExtension(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "report")

	saved, err := New().Export(base, []string{"http://a.com"})
	require.NoError(t, err)
	require.Equal(t, base+".xlsx", saved)

	_, err = os.Stat(saved)
	require.NoError(t, err)
	_, err = os.Stat(base)
	require.True(t, os.IsNotExist(err), "nothing should be written at the bare path")
}

func TestExport_ReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	_, err := New().Export(path, []string{"http://old.com", "http://old2.com"})
	require.NoError(t, err)
	_, err = New().Export(path, []string{"http://new.com"})
	require.NoError(t, err)

	require.Equal(t, [][]string{{"URL"}, {"http://new.com"}}, readColumn(t, path))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file should not be left behind")
}

func TestExport_UnwritableLocationIsExportError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	saved, err := New().Export(filepath.Join(blocker, "out.xlsx"), []string{"http://a.com"})
	require.Error(t, err)
	require.Empty(t, saved)
	require.True(t, domain.IsKind(err, domain.KindExport), "got %v", err)
}

func TestResolvePath(t *testing.T) {
	require.Equal(t, "a.xlsx", ResolvePath("a"))
	require.Equal(t, "a.xlsx", ResolvePath("a.xlsx"))
	require.Equal(t, "a.csv", ResolvePath("a.csv"))
}
