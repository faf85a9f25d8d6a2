package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/h13-0/AppLauncher/internal/domain"
	"github.com/h13-0/AppLauncher/internal/infra/configfinder"
	"github.com/h13-0/AppLauncher/internal/infra/history"
	"github.com/h13-0/AppLauncher/internal/infra/launchconfig"
	"github.com/h13-0/AppLauncher/internal/infra/logger"
	"github.com/h13-0/AppLauncher/internal/infra/pathutil"
	"github.com/h13-0/AppLauncher/internal/infra/settings"
	"github.com/h13-0/AppLauncher/internal/infra/spawner"
	"github.com/h13-0/AppLauncher/internal/ports"
	"github.com/h13-0/AppLauncher/internal/usecase"
)

// logsDirName holds the debug log and the launch history, beside the binary.
const logsDirName = "logs"

type launcherCtx struct {
	settings domain.Settings
	ownDir   string

	locator ports.ConfigLocator
	loader  ports.ConfigLoader
	files   ports.FileChecker
	spawner ports.Spawner
	history *history.JSONLStore

	closeLog func() error
}

func loadLauncher(cmd *cobra.Command) (*launcherCtx, error) {
	st, err := settings.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}

	finder := configfinder.NewFinder(configfinder.WithOverride(st.ConfigPath))
	ownDir, err := finder.OwnDir()
	if err != nil {
		return nil, err
	}
	logsDir := filepath.Join(ownDir, logsDirName)

	closeLog := setupLogging(st.Debug, logsDir, cmd.ErrOrStderr())

	return &launcherCtx{
		settings: st,
		ownDir:   ownDir,
		locator:  finder,
		loader:   launchconfig.NewLoader(),
		files:    pathutil.Checker{},
		spawner:  spawner.New(spawner.WithLogger(logger.L())),
		history:  history.NewJSONLStore(logsDir),
		closeLog: closeLog,
	}, nil
}

// setupLogging enables the debug log under dir. A log that cannot be opened never blocks
// the launch; it is reported on stderr and logging stays off.
func setupLogging(debug bool, dir string, stderr io.Writer) func() error {
	cfg := logger.Config{Debug: debug}
	if debug {
		cfg.Dir = dir
	}
	closeLog, err := logger.Setup(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "warning: debug log disabled: %v\n", err)
	}
	return closeLog
}

// printLogNotice tells the user where the debug log went, if one is being written.
func printLogNotice(w io.Writer) {
	if path := logger.Path(); path != "" {
		fmt.Fprintf(w, "Debug log:  %s\n", path)
	}
}

func (lc *launcherCtx) planner() *usecase.PlanLaunch {
	return usecase.NewPlanLaunch(lc.locator, lc.loader, lc.files, usecase.WithPlanLogger(logger.L()))
}

func (lc *launcherCtx) launch() *usecase.Launch {
	opts := []usecase.LaunchOption{usecase.WithLaunchLogger(logger.L())}
	if lc.settings.Record {
		opts = append(opts, usecase.WithRecorder(lc.history))
	}
	return usecase.NewLaunch(lc.planner(), lc.spawner, opts...)
}

func (lc *launcherCtx) close() {
	if lc.closeLog != nil {
		_ = lc.closeLog()
	}
}
