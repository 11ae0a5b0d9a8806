package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	// Dir is the log directory, relative to the workspace root.
	Dir      = ".linkcheck/logs"
	fileName = "linkcheck.log"
)

type Config struct {
	Root    string
	Debug   bool
	Version string
}

var (
	mu      sync.RWMutex
	global  = discard()
	logFile *os.File
	logPath string
)

// PathFor returns the log file location for a workspace root.
func PathFor(root string) string {
	if root == "" {
		root = "."
	}
	return filepath.Join(filepath.Clean(root), filepath.FromSlash(Dir), fileName)
}

// Setup points the process logger at the workspace log file. The returned
// cleanup closes that file; on error the logger keeps discarding.
func Setup(cfg Config) (func() error, error) {
	path := PathFor(cfg.Root)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}

	l := slog.New(newHandler(f, cfg.Debug))
	if cfg.Version != "" {
		l = l.With("version", cfg.Version)
	}

	mu.Lock()
	global = l
	logFile = f
	logPath = path
	mu.Unlock()

	l.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		if logFile != f {
			return nil
		}
		global = discard()
		logFile = nil
		logPath = ""
		return f.Close()
	}

	return cleanup, nil
}

// newHandler writes JSON lines with UTC RFC3339Nano timestamps. Debug
// lowers the level and adds the call site.
func newHandler(w io.Writer, debug bool) slog.Handler {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})
}

// L returns the process logger. Before Setup it discards.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Path is the open log file, or "" when logging is discarded.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
