package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/journal/pkg/commands/options"
	"tableflip.dev/journal/pkg/runner/debug"
)

func addDebug(topLevel *cobra.Command, env *session) {
	do := &options.DebugOptions{}

	cmd := &cobra.Command{
		Use:   "debug",
		Short: "Turn debug logging on or off.",
		Example: `
journal debug --enable
journal debug --disable
journal debug --status
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := do.Validate(); err != nil {
				return err
			}
			cfg, err := env.config()
			if err != nil {
				return err
			}
			d := debug.Debug{
				Config:  cfg,
				Enable:  do.Enable,
				Disable: do.Disable,
				Out:     cmd.OutOrStdout(),
			}
			return d.Do(context.Background())
		},
	}

	options.AddDebugArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
