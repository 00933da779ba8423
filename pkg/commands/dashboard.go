package commands

import (
	"github.com/spf13/cobra"

	teaui "tableflip.dev/journal/pkg/runner/tea"
)

func addDashboard(topLevel *cobra.Command, env *session) {
	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"ui"},
		Short:   "Open the full screen journal dashboard.",
		Example: `
journal dashboard
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := env.service()
			if err != nil {
				return err
			}
			return teaui.Run(svc)
		},
	}

	topLevel.AddCommand(cmd)
}
