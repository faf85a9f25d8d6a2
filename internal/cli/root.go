package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/h13-0/AppLauncher/internal/infra/settings"
	"github.com/h13-0/AppLauncher/internal/ui/notify"
)

func Execute() {
	// Started from Explorer the launcher must launch, not print cobra's mousetrap hint.
	cobra.MousetrapHelpText = ""

	root := newRootCmd()
	ran, err := root.ExecuteC()
	if err == nil {
		return
	}

	if ran == nil {
		ran = root
	}
	reporter := notify.Default(consoleReporting(ran, ran == root, os.Stderr), os.Stderr)
	_ = reporter.Report(notify.Title, notify.UserMessage(err))
	os.Exit(1)
}

// consoleReporting decides whether errors go to stderr rather than a dialog. Subcommands are
// run from a terminal and always use it.
func consoleReporting(ran *cobra.Command, isRoot bool, stderr io.Writer) bool {
	if !isRoot {
		return true
	}
	st, err := settings.Load(ran.Flags())
	if err != nil {
		// The --console choice is unknown here. Fall back to stderr next to the warning.
		fmt.Fprintf(stderr, "warning: reading launcher settings: %v\n", err)
		return true
	}
	return st.Console
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "applauncher",
		Short:         "Start the program described by AppLauncher.yaml beside this binary",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lc, err := loadLauncher(cmd)
			if err != nil {
				return err
			}
			defer lc.close()

			_, _, err = lc.launch().Execute(cmd.Context())
			return err
		},
	}

	settings.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		validateCmd(),
		showCmd(),
		initCmd(),
		historyCmd(),
		versionCmd(),
	)
	return cmd
}
