package urlsource

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/linkcheck/internal/domain"
	"github.com/aalvaropc/linkcheck/internal/ports"
)

// DefaultJSONPath selects every element of a top-level array.
const DefaultJSONPath = "$[*]"

// Loader turns a file into batch input text, one URL per line for
// structured formats and the raw text otherwise.
type Loader struct {
	jsonPath string
}

type Option func(*Loader)

// WithJSONPath sets the expression used for .json files.
func WithJSONPath(expr string) Option {
	return func(l *Loader) {
		if strings.TrimSpace(expr) != "" {
			l.jsonPath = strings.TrimSpace(expr)
		}
	}
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{jsonPath: DefaultJSONPath}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.URLSource = (*Loader)(nil)

func (l *Loader) Load(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &domain.OpError{
			Op:   "urlsource.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	return l.LoadReader(path, f)
}

// LoadReader is Load for an already opened stream; name picks the format
// by extension.
func (l *Loader) LoadReader(name string, r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", &domain.OpError{
			Op:   "urlsource.read",
			Kind: domain.KindExecution,
			Path: name,
			Err:  err,
		}
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		urls, err := extractHTML(bytes.NewReader(b))
		if err != nil {
			return "", invalid("urlsource.html", name, err)
		}
		return strings.Join(urls, "\n"), nil
	case ".json":
		urls, err := l.extractJSON(b)
		if err != nil {
			return "", invalid("urlsource.json", name, err)
		}
		return strings.Join(urls, "\n"), nil
	default:
		return string(b), nil
	}
}

func (l *Loader) extractJSON(body []byte) ([]string, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("not valid JSON: %w", err)
	}

	val, err := jsonpath.Get(l.jsonPath, doc)
	if err != nil {
		return nil, fmt.Errorf("jsonpath %s: %w", l.jsonPath, err)
	}

	var out []string
	collectStrings(val, &out)
	return out, nil
}

// collectStrings flattens jsonpath results; non-string leaves are skipped.
func collectStrings(v any, out *[]string) {
	switch t := v.(type) {
	case string:
		if s := strings.TrimSpace(t); s != "" {
			*out = append(*out, s)
		}
	case []any:
		for _, e := range t {
			collectStrings(e, out)
		}
	}
}

func invalid(op, path string, err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  err,
	}
}
