package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/h13-0/AppLauncher/internal/domain"
)

// planView is the printable form of a launch plan.
type planView struct {
	Config           string              `json:"config" yaml:"config"`
	Executable       string              `json:"executable" yaml:"executable"`
	WorkingDirectory string              `json:"working_directory,omitempty" yaml:"working_directory,omitempty"`
	Arguments        []string            `json:"arguments" yaml:"arguments"`
	CommandLine      string              `json:"command_line" yaml:"command_line"`
	Issues           []domain.ParseIssue `json:"issues,omitempty" yaml:"issues,omitempty"`
}

func newPlanView(plan domain.LaunchPlan, report domain.ParseReport) planView {
	args := plan.Config.Arguments
	if args == nil {
		args = []string{}
	}
	return planView{
		Config:           plan.ConfigPath,
		Executable:       plan.Executable,
		WorkingDirectory: plan.WorkingDirectory,
		Arguments:        args,
		CommandLine:      plan.CommandLine,
		Issues:           report.Issues,
	}
}

func showCmd() *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved launch plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lc, err := loadLauncher(cmd)
			if err != nil {
				return err
			}
			defer lc.close()

			plan, report, err := lc.planner().Execute(cmd.Context())
			if err != nil {
				return err
			}
			// stdout may be JSON or YAML, so the log notice goes to stderr.
			printLogNotice(cmd.ErrOrStderr())
			return printPlan(cmd.OutOrStdout(), newPlanView(plan, report), format)
		},
	}

	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json|yaml")
	return c
}

func printPlan(w io.Writer, v planView, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "pretty", "":
		printPrettyPlan(w, v)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json|yaml)", format)
	}
}

func printPrettyPlan(w io.Writer, v planView) {
	label := lipgloss.NewStyle().Bold(true).Width(12)

	workdir := v.WorkingDirectory
	if workdir == "" {
		workdir = "(inherited)"
	}

	fmt.Fprintln(w, label.Render("Config:")+v.Config)
	fmt.Fprintln(w, label.Render("Executable:")+v.Executable)
	fmt.Fprintln(w, label.Render("Workdir:")+workdir)
	fmt.Fprintln(w, label.Render("Arguments:")+fmt.Sprintf("%d", len(v.Arguments)))
	for i, a := range v.Arguments {
		fmt.Fprintf(w, "  [%d] %s\n", i, a)
	}
	fmt.Fprintln(w, label.Render("Command:")+v.CommandLine)

	if len(v.Issues) > 0 {
		fmt.Fprintln(w)
		printIssues(w, domain.ParseReport{Issues: v.Issues})
	}
}
