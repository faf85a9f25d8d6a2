package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/h13-0/AppLauncher/internal/infra/configinit"
	"github.com/h13-0/AppLauncher/internal/usecase"
)

func initCmd() *cobra.Command {
	var dir string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a starter AppLauncher.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target := strings.TrimSpace(dir)
			if target == "" {
				lc, err := loadLauncher(cmd)
				if err != nil {
					return err
				}
				defer lc.close()
				target = lc.ownDir
			}

			uc := usecase.NewInitConfig(configinit.NewInitializer())
			path, err := uc.Execute(target, force)
			if errors.Is(err, configinit.ErrExists) {
				return fmt.Errorf("%w (use --force to overwrite)", err)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	c.Flags().StringVar(&dir, "dir", "", "Directory to write into (default: beside the launcher)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing config")
	return c
}
