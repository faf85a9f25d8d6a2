package history

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"github.com/h13-0/AppLauncher/internal/domain"
	"github.com/h13-0/AppLauncher/internal/ports"
)

const (
	defaultFileName = "history.jsonl"
	maskValue       = "********"
	lockRetryDelay  = 25 * time.Millisecond
)

// JSONLStore appends launch records to a JSON-lines file. Concurrent launchers are
// serialized with a lock file next to it.
type JSONLStore struct {
	dir            string
	fileName       string
	maskingEnabled bool
	lockTimeout    time.Duration
	now            func() time.Time
}

type Option func(*JSONLStore)

// WithMasking controls masking of sensitive argument values (default on).
func WithMasking(enabled bool) Option {
	return func(s *JSONLStore) { s.maskingEnabled = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONLStore) { s.now = now }
}

func WithLockTimeout(d time.Duration) Option {
	return func(s *JSONLStore) { s.lockTimeout = d }
}

func NewJSONLStore(dir string, opts ...Option) *JSONLStore {
	s := &JSONLStore{
		dir:            dir,
		fileName:       defaultFileName,
		maskingEnabled: true,
		lockTimeout:    2 * time.Second,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.LaunchRecorder = (*JSONLStore)(nil)

// Path returns the history file location.
func (s *JSONLStore) Path() string {
	return filepath.Join(s.dir, s.fileName)
}

func (s *JSONLStore) Record(rec domain.LaunchRecord) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return &domain.OpError{
			Op:   "history.mkdir",
			Kind: domain.KindExecution,
			Path: s.dir,
			Err:  err,
		}
	}

	if rec.StartedAt.IsZero() {
		rec.StartedAt = s.now()
	}
	rec.StartedAt = rec.StartedAt.UTC()
	if s.maskingEnabled {
		rec.Arguments = MaskArguments(rec.Arguments)
	}

	line, err := json.Marshal(rec)
	if err != nil {
		return &domain.OpError{
			Op:   "history.marshal",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	unlock, err := s.lock(false)
	if err != nil {
		return err
	}
	defer unlock()

	path := s.Path()
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return &domain.OpError{
			Op:   "history.open",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return &domain.OpError{
			Op:   "history.write",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

// List returns up to limit records, newest first. limit <= 0 returns all of them.
// Malformed lines are skipped.
func (s *JSONLStore) List(limit int) ([]domain.LaunchRecord, error) {
	path := s.Path()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	unlock, err := s.lock(true)
	if err != nil {
		return nil, err
	}
	defer unlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "history.open",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	defer f.Close()

	var out []domain.LaunchRecord
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		var rec domain.LaunchRecord
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			continue
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, &domain.OpError{
			Op:   "history.read",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *JSONLStore) lock(shared bool) (func(), error) {
	lockPath := s.Path() + ".lock"
	fl := flock.New(lockPath)

	ctx, cancel := context.WithTimeout(context.Background(), s.lockTimeout)
	defer cancel()

	var (
		ok  bool
		err error
	)
	if shared {
		ok, err = fl.TryRLockContext(ctx, lockRetryDelay)
	} else {
		ok, err = fl.TryLockContext(ctx, lockRetryDelay)
	}
	if err != nil || !ok {
		if err == nil {
			err = errors.New("history file is locked")
		}
		return nil, &domain.OpError{
			Op:   "history.lock",
			Kind: domain.KindExecution,
			Path: lockPath,
			Err:  err,
		}
	}
	return func() { _ = fl.Unlock() }, nil
}

// MaskArguments returns a copy of args with values of sensitive options replaced.
// Both "--password=x" and "--password x" forms are handled.
func MaskArguments(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)

	for i := 0; i < len(out); i++ {
		a := out[i]
		if !isOption(a) {
			continue
		}

		if k, _, found := cutOption(a); found {
			if isSensitiveKey(k) {
				out[i] = a[:len(k)+1] + maskValue
			}
			continue
		}

		if isSensitiveKey(a) && i+1 < len(out) && !strings.HasPrefix(out[i+1], "-") {
			out[i+1] = maskValue
			i++
		}
	}
	return out
}

// isOption reports whether a names an option. "/key" switches exist only on Windows, and
// anything with a further separator in its key is a path.
func isOption(a string) bool {
	if strings.HasPrefix(a, "-") {
		return true
	}
	if runtime.GOOS != "windows" || !strings.HasPrefix(a, "/") {
		return false
	}
	k, _, _ := cutOption(a)
	return !strings.ContainsAny(k[1:], `/\`)
}

// cutOption splits "--key=value" or "/key:value".
func cutOption(a string) (key, value string, found bool) {
	if i := strings.IndexAny(a, "=:"); i > 0 {
		return a[:i], a[i+1:], true
	}
	return a, "", false
}

func isSensitiveKey(k string) bool {
	kk := strings.ToLower(strings.TrimLeft(k, "-/"))
	return strings.Contains(kk, "token") ||
		strings.Contains(kk, "secret") ||
		strings.Contains(kk, "password") ||
		strings.Contains(kk, "passwd") ||
		strings.Contains(kk, "api-key") ||
		strings.Contains(kk, "apikey")
}
