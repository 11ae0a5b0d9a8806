package urlsource

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/linkcheck/internal/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestLoad_PlainTextIsReturnedUnchanged(t *testing.T) {
	content := "example.com\n  https://a.com\thttp://b.com\n"
	p := writeFile(t, "urls.txt", content)

	got, err := NewLoader().Load(p)
	require.NoError(t, err)
	require.Equal(t, content, got)
}

func TestLoad_HTMLExtractsAbsoluteLinks(t *testing.T) {
	p := writeFile(t, "page.html", `<!doctype html>
<html><head>
  <link rel="stylesheet" href="https://cdn.example.com/app.css">
  <script src="http://example.com/app.js"></script>
</head><body>
  <a href="https://example.com/docs">docs</a>
  <a href="/relative">rel</a>
  <a href="mailto:me@example.com">mail</a>
  <a href="https://example.com/docs">dup</a>
  <img src="https://img.example.com/logo.png">
</body></html>`)

	got, err := NewLoader().Load(p)
	require.NoError(t, err)
	require.Equal(t, []string{
		"https://cdn.example.com/app.css",
		"http://example.com/app.js",
		"https://example.com/docs",
		"https://img.example.com/logo.png",
	}, strings.Split(got, "\n"))
}

func TestLoad_JSONDefaultPath(t *testing.T) {
	p := writeFile(t, "urls.json", `["https://a.com", "b.com", 42, ""]`)

	got, err := NewLoader().Load(p)
	require.NoError(t, err)
	require.Equal(t, "https://a.com\nb.com", got)
}

func TestLoad_JSONCustomPath(t *testing.T) {
	p := writeFile(t, "sites.json", `{"sites":[{"url":"https://a.com"},{"url":"https://b.com"}]}`)

	got, err := NewLoader(WithJSONPath("$.sites[*].url")).Load(p)
	require.NoError(t, err)
	require.Equal(t, "https://a.com\nhttps://b.com", got)
}

func TestLoad_InvalidJSON(t *testing.T) {
	p := writeFile(t, "bad.json", `{not json`)

	_, err := NewLoader().Load(p)
	require.Error(t, err)
	require.True(t, domain.IsKind(err, domain.KindInvalidConfig), "got %v", err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := NewLoader().Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	require.True(t, domain.IsKind(err, domain.KindNotFound), "got %v", err)
}

func TestLoadReader_UsesNameForFormat(t *testing.T) {
	got, err := NewLoader().LoadReader("-", strings.NewReader("a.com b.com"))
	require.NoError(t, err)
	require.Equal(t, "a.com b.com", got)
}
