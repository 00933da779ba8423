package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/journal/pkg/commands/options"
	"tableflip.dev/journal/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command, env *session) {
	jo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about where the journal and its settings are stored.",
		Example: `
journal info
journal info --json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := env.config()
			if err != nil {
				return jo.HandleError(cmd, err)
			}
			p, err := env.persistence()
			if err != nil {
				return jo.HandleError(cmd, err)
			}
			s := info.Info{
				Config:      cfg,
				Persistence: p,
				JSON:        jo.JSON,
				Out:         cmd.OutOrStdout(),
			}
			err = s.Do(context.Background())
			return jo.HandleError(cmd, err)
		},
	}

	options.AddOutputArg(cmd, jo)

	topLevel.AddCommand(cmd)
}
