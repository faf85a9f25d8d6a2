package usecase

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/h13-0/AppLauncher/internal/domain"
	"github.com/h13-0/AppLauncher/internal/ports"
)

// Launch plans and spawns the configured program, then forgets about it.
type Launch struct {
	planner  *PlanLaunch
	spawner  ports.Spawner
	recorder ports.LaunchRecorder
	logger   *slog.Logger
	now      func() time.Time
}

type LaunchOption func(*Launch)

// WithRecorder enables the launch history. Recording failures never fail a launch.
func WithRecorder(r ports.LaunchRecorder) LaunchOption {
	return func(uc *Launch) { uc.recorder = r }
}

func WithLaunchLogger(l *slog.Logger) LaunchOption {
	return func(uc *Launch) {
		if l != nil {
			uc.logger = l
		}
	}
}

func NewLaunch(planner *PlanLaunch, spawner ports.Spawner, opts ...LaunchOption) *Launch {
	uc := &Launch{
		planner: planner,
		spawner: spawner,
		logger:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *Launch) Execute(ctx context.Context) (domain.LaunchPlan, domain.Process, error) {
	plan, _, err := uc.planner.Execute(ctx)
	if err != nil {
		uc.logger.Error("launch.plan_failed", "error", err.Error(), "kind", string(domain.KindOf(err)))
		return domain.LaunchPlan{}, domain.Process{}, err
	}

	startedAt := uc.now()
	proc, err := uc.spawner.Spawn(ctx, domain.SpawnRequest{
		CommandLine:      plan.CommandLine,
		WorkingDirectory: plan.WorkingDirectory,
	})
	uc.record(plan, proc, startedAt, err)

	if err != nil {
		uc.logger.Error("launch.spawn_failed", "error", err.Error())
		return plan, domain.Process{}, err
	}

	uc.logger.Info("launch.handed_off", "pid", proc.PID, "executable", plan.Executable)
	return plan, proc, nil
}

func (uc *Launch) record(plan domain.LaunchPlan, proc domain.Process, startedAt time.Time, spawnErr error) {
	if uc.recorder == nil {
		return
	}

	rec := domain.LaunchRecord{
		StartedAt:        startedAt,
		ConfigPath:       plan.ConfigPath,
		Executable:       plan.Executable,
		Arguments:        plan.Config.Arguments,
		WorkingDirectory: plan.WorkingDirectory,
		PID:              proc.PID,
	}
	if spawnErr != nil {
		rec.Error = spawnErr.Error()
	}

	if err := uc.recorder.Record(rec); err != nil {
		uc.logger.Warn("launch.record_failed", "error", err.Error())
	}
}
