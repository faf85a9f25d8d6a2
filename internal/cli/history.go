package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/h13-0/AppLauncher/internal/domain"
	"github.com/h13-0/AppLauncher/internal/infra/cmdline"
)

func historyCmd() *cobra.Command {
	var limit int
	var format string

	c := &cobra.Command{
		Use:   "history",
		Short: "List launches recorded with --record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lc, err := loadLauncher(cmd)
			if err != nil {
				return err
			}
			defer lc.close()

			recs, err := lc.history.List(limit)
			if err != nil {
				return err
			}
			return printHistory(cmd.OutOrStdout(), recs, format)
		},
	}

	c.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries (0 = all)")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return c
}

func printHistory(w io.Writer, recs []domain.LaunchRecord, format string) error {
	switch format {
	case "json":
		if recs == nil {
			recs = []domain.LaunchRecord{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(recs)
	case "pretty", "":
		if len(recs) == 0 {
			fmt.Fprintln(w, "No launches recorded.")
			return nil
		}
		for _, r := range recs {
			status := fmt.Sprintf("pid=%d", r.PID)
			if r.Error != "" {
				status = "FAIL"
			}
			fmt.Fprintf(w, "%s  %-8s %s\n", r.StartedAt.Local().Format(time.DateTime), status, cmdline.Build(r.Executable, r.Arguments))
			if r.Error != "" {
				fmt.Fprintf(w, "  error: %s\n", r.Error)
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
