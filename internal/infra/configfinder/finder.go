package configfinder

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/h13-0/AppLauncher/internal/domain"
	"github.com/h13-0/AppLauncher/internal/infra/pathutil"
	"github.com/h13-0/AppLauncher/internal/ports"
)

// Finder locates AppLauncher.yaml beside the running launcher binary.
type Finder struct {
	ConfigFile string // defaults to "AppLauncher.yaml"

	override   string
	executable func() (string, error)
}

type Option func(*Finder)

// WithOverride makes Locate use path instead of the file beside the binary.
func WithOverride(path string) Option {
	return func(f *Finder) { f.override = strings.TrimSpace(path) }
}

// WithExecutable replaces os.Executable; useful for tests.
func WithExecutable(fn func() (string, error)) Option {
	return func(f *Finder) {
		if fn != nil {
			f.executable = fn
		}
	}
}

func NewFinder(opts ...Option) *Finder {
	f := &Finder{
		ConfigFile: domain.ConfigFileName,
		executable: os.Executable,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ ports.ConfigLocator = (*Finder)(nil)

// Locate returns the config path, or a KindConfigNotFound error carrying the expected path.
func (f *Finder) Locate() (string, error) {
	var path string
	if f.override != "" {
		abs, err := filepath.Abs(f.override)
		if err != nil {
			abs = f.override
		}
		path = abs
	} else {
		dir, err := f.OwnDir()
		if err != nil {
			return "", err
		}
		path = pathutil.Resolve(dir, f.ConfigFile)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", &domain.OpError{
			Op:   "configfinder.locate",
			Kind: domain.KindConfigNotFound,
			Path: path,
			Err:  domain.ErrConfigNotFound,
		}
	}
	if info.IsDir() {
		return "", &domain.OpError{
			Op:   "configfinder.locate",
			Kind: domain.KindConfigNotFound,
			Path: path,
			Err:  errors.New("path is a directory"),
		}
	}
	return path, nil
}

// OwnDir returns the directory of the running launcher binary.
func (f *Finder) OwnDir() (string, error) {
	exe, err := f.executable()
	if err != nil {
		return "", &domain.OpError{
			Op:   "configfinder.owndir",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// Follow a symlinked launcher to the directory it really lives in.
	if real, err := filepath.EvalSymlinks(exe); err == nil {
		exe = real
	}
	return pathutil.Dir(exe), nil
}
