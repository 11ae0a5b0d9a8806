package runstore

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/linkcheck/internal/domain"
	"github.com/aalvaropc/linkcheck/internal/ports"
)

const (
	defaultRunsDir = "runs"
	indexFile      = "index.jsonl"
)

// idLen is how many characters of the batch ID go into the file name.
const idLen = 8

type JSONStore struct {
	rootDir     string
	runsDirName string
	writeIndex  bool
	now         func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: runs/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	runsDir := cfg.Paths.RunsDir
	if strings.TrimSpace(runsDir) == "" {
		runsDir = defaultRunsDir
	}

	s := &JSONStore{
		rootDir:     root,
		runsDirName: runsDir,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ArtifactStore = (*JSONStore)(nil)

// artifact is the on-disk shape of a saved batch.
type artifact struct {
	domain.BatchOutcome
	Summary domain.SummaryEvent `json:"summary"`
}

func (s *JSONStore) SaveOutcome(out domain.BatchOutcome) (string, error) {
	dir := filepath.Join(s.rootDir, s.runsDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := out.StartedAt
	if ts.IsZero() {
		ts = s.now()
		out.StartedAt = ts
	}
	ts = ts.UTC()

	slug := slugify(out.ID)
	if len(slug) > idLen {
		slug = slug[:idLen]
	}
	if slug == "" {
		slug = "batch"
	}

	base := fmt.Sprintf("%s_%s", ts.Format("20060102T150405Z"), slug)
	id := uniqueID(dir, base)
	filename := id + ".json"
	path := filepath.Join(dir, filename)

	summary := out.Summary()
	b, err := json.MarshalIndent(artifact{BatchOutcome: out, Summary: summary}, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "runstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "runstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, filename, out, summary)
	}

	return id, nil
}

func uniqueID(dir, base string) string {
	id := base
	for n := 2; ; n++ {
		if _, err := os.Stat(filepath.Join(dir, id+".json")); os.IsNotExist(err) {
			return id
		}
		id = fmt.Sprintf("%s_%d", base, n)
	}
}

// IndexEntry is one line of runs/index.jsonl.
type IndexEntry struct {
	ID         string    `json:"id"`
	File       string    `json:"file"`
	BatchID    string    `json:"batch_id"`
	Total      int       `json:"total"`
	Working    int       `json:"working"`
	NotWorking int       `json:"not_working"`
	StartedAt  time.Time `json:"started_at"`
}

func (s *JSONStore) appendIndex(dir, id, filename string, out domain.BatchOutcome, sum domain.SummaryEvent) error {
	line, err := json.Marshal(IndexEntry{
		ID:         id,
		File:       filename,
		BatchID:    out.ID,
		Total:      sum.Total,
		Working:    sum.Working,
		NotWorking: sum.NotWorking,
		StartedAt:  out.StartedAt,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(dir, indexFile)
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, _ = f.Write(append(line, '\n'))
	return nil
}

// List returns the indexed runs, oldest first. A missing index is not an error.
func (s *JSONStore) List() ([]IndexEntry, error) {
	path := filepath.Join(s.rootDir, s.runsDirName, indexFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []IndexEntry{}, nil
		}
		return nil, &domain.OpError{
			Op:   "runstore.list",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	out := []IndexEntry{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var e IndexEntry
		if err := json.Unmarshal(line, &e); err != nil {
			// Skip lines from a partial write.
			continue
		}
		out = append(out, e)
	}
	if err := sc.Err(); err != nil {
		return out, &domain.OpError{
			Op:   "runstore.list",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return out, nil
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
