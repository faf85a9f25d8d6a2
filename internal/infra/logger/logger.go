// Package logger owns the process-wide slog logger. It discards until Setup points it at a file.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileName is the log file written inside Config.Dir.
const FileName = "applauncher.log"

type Config struct {
	// Dir enables file logging when non-empty.
	Dir   string
	Debug bool
}

// sink is what the global logger currently writes to. A zero file means discard.
type sink struct {
	log  *slog.Logger
	file *os.File
}

var (
	mu      sync.RWMutex
	current = sink{log: discard()}
)

// Setup routes the global logger to Dir/applauncher.log and returns a func that closes it
// and restores discarding. With an empty Dir nothing is opened.
func Setup(cfg Config) (func() error, error) {
	swap(sink{log: discard()})
	if cfg.Dir == "" {
		return func() error { return nil }, nil
	}

	f, err := openLog(cfg.Dir)
	if err != nil {
		return func() error { return nil }, err
	}

	l := slog.New(newHandler(f, cfg.Debug))
	swap(sink{log: l, file: f})
	l.Info("logger.initialized", "path", f.Name(), "debug", cfg.Debug, "pid", os.Getpid())

	return func() error {
		prev := swap(sink{log: discard()})
		if prev.file == nil {
			return nil
		}
		return prev.file.Close()
	}, nil
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return current.log
}

// Path is the file being written, or "" while discarding.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	if current.file == nil {
		return ""
	}
	return current.file.Name()
}

func openLog(dir string) (*os.File, error) {
	dir = filepath.Clean(dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, FileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

// newHandler writes JSON lines with UTC timestamps; debug adds the call site.
func newHandler(w io.Writer, debug bool) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}
	if debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}
	return slog.NewJSONHandler(w, opts)
}

func swap(next sink) sink {
	mu.Lock()
	defer mu.Unlock()
	prev := current
	current = next
	return prev
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
