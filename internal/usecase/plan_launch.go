package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/h13-0/AppLauncher/internal/domain"
	"github.com/h13-0/AppLauncher/internal/infra/cmdline"
	"github.com/h13-0/AppLauncher/internal/infra/pathutil"
	"github.com/h13-0/AppLauncher/internal/ports"
)

// PlanLaunch performs every launch step short of spawning: locate, parse, validate,
// resolve paths, check the target exists and build the command line.
type PlanLaunch struct {
	locator ports.ConfigLocator
	loader  ports.ConfigLoader
	files   ports.FileChecker
	logger  *slog.Logger
}

type PlanOption func(*PlanLaunch)

func WithPlanLogger(l *slog.Logger) PlanOption {
	return func(uc *PlanLaunch) {
		if l != nil {
			uc.logger = l
		}
	}
}

func NewPlanLaunch(locator ports.ConfigLocator, loader ports.ConfigLoader, files ports.FileChecker, opts ...PlanOption) *PlanLaunch {
	uc := &PlanLaunch{
		locator: locator,
		loader:  loader,
		files:   files,
		logger:  slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute returns the resolved plan and the parser's diagnostics. The report is returned
// even when a later step fails so callers can still show warnings.
func (uc *PlanLaunch) Execute(ctx context.Context) (domain.LaunchPlan, domain.ParseReport, error) {
	if err := ctx.Err(); err != nil {
		return domain.LaunchPlan{}, domain.ParseReport{}, err
	}

	configPath, err := uc.locator.Locate()
	if err != nil {
		return domain.LaunchPlan{}, domain.ParseReport{}, err
	}
	uc.logger.Debug("plan.config_located", "path", configPath)

	cfg, report, err := uc.loader.LoadConfig(configPath)
	if err != nil {
		return domain.LaunchPlan{}, report, err
	}
	for _, issue := range report.Issues {
		uc.logger.Debug("plan.config_issue", "line", issue.Line, "key", issue.Key, "message", issue.Message)
	}

	if cfg.Executable == "" {
		return domain.LaunchPlan{}, report, &domain.OpError{
			Op:   "usecase.plan",
			Kind: domain.KindMissingField,
			Path: configPath,
			Err:  domain.ErrMissingField,
		}
	}

	plan := domain.LaunchPlan{
		ConfigPath:       configPath,
		Config:           cfg,
		Executable:       pathutil.Resolve(cfg.SourceDirectory, cfg.Executable),
		WorkingDirectory: pathutil.Resolve(cfg.SourceDirectory, cfg.WorkingDirectory),
	}

	if !uc.files.Exists(plan.Executable) {
		return domain.LaunchPlan{}, report, &domain.OpError{
			Op:   "usecase.plan",
			Kind: domain.KindTargetNotFound,
			Path: plan.Executable,
			Err:  domain.ErrTargetNotFound,
		}
	}

	plan.CommandLine = cmdline.Build(plan.Executable, cfg.Arguments)
	uc.logger.Info("plan.ready", "executable", plan.Executable, "dir", plan.WorkingDirectory, "args", len(cfg.Arguments))

	return plan, report, nil
}
