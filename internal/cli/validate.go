package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/h13-0/AppLauncher/internal/domain"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the launch config and target without starting anything",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lc, err := loadLauncher(cmd)
			if err != nil {
				return err
			}
			defer lc.close()

			plan, report, err := lc.planner().Execute(cmd.Context())
			out := cmd.OutOrStdout()
			printIssues(out, report)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Config:     %s\n", plan.ConfigPath)
			fmt.Fprintf(out, "Executable: %s\n", plan.Executable)
			printLogNotice(out)
			fmt.Fprintln(out, "OK")
			return nil
		},
	}
}

func printIssues(w io.Writer, report domain.ParseReport) {
	for _, is := range report.Issues {
		if is.Key != "" {
			fmt.Fprintf(w, "warning: line %d: %q: %s\n", is.Line, is.Key, is.Message)
			continue
		}
		fmt.Fprintf(w, "warning: line %d: %s\n", is.Line, is.Message)
	}
}
