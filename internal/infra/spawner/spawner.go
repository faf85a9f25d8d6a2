// Package spawner starts detached child processes from a single command-line string.
package spawner

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os/exec"
	"syscall"

	"github.com/h13-0/AppLauncher/internal/domain"
	"github.com/h13-0/AppLauncher/internal/infra/cmdline"
	"github.com/h13-0/AppLauncher/internal/ports"
)

// Exec spawns processes through os/exec without waiting for them.
type Exec struct {
	logger *slog.Logger
}

type Option func(*Exec)

func WithLogger(l *slog.Logger) Option {
	return func(e *Exec) {
		if l != nil {
			e.logger = l
		}
	}
}

func New(opts ...Option) *Exec {
	e := &Exec{logger: slog.New(slog.NewJSONHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var _ ports.Spawner = (*Exec)(nil)

// Spawn starts req.CommandLine. The program is the first argument of the line. The child's
// window is suppressed, its handles are released before returning and it is never waited on.
func (e *Exec) Spawn(ctx context.Context, req domain.SpawnRequest) (domain.Process, error) {
	if err := ctx.Err(); err != nil {
		return domain.Process{}, err
	}

	argv := cmdline.Split(req.CommandLine)
	if len(argv) == 0 {
		return domain.Process{}, &domain.OpError{
			Op:   "spawner.spawn",
			Kind: domain.KindSpawnFailed,
			Err:  &domain.SpawnError{Description: "empty command line", Err: domain.ErrSpawnFailed},
		}
	}

	cmd := &exec.Cmd{
		Path:        argv[0],
		Args:        argv,
		Dir:         req.WorkingDirectory,
		SysProcAttr: sysProcAttr(req.CommandLine),
	}

	e.logger.Debug("spawner.start", "command_line", req.CommandLine, "dir", req.WorkingDirectory)

	if err := cmd.Start(); err != nil {
		return domain.Process{}, &domain.OpError{
			Op:   "spawner.spawn",
			Kind: domain.KindSpawnFailed,
			Path: argv[0],
			Err:  spawnError(err),
		}
	}

	proc := cmd.Process
	defer func() { _ = proc.Release() }()

	e.logger.Info("spawner.started", "pid", proc.Pid)
	return domain.Process{PID: proc.Pid}, nil
}

// spawnError extracts the OS error code from a failed start.
func spawnError(err error) *domain.SpawnError {
	se := &domain.SpawnError{Description: err.Error(), Err: err}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		se.Code = uint32(errno)
		se.Description = errno.Error()
	}
	return se
}
