package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/journal/pkg/commands/options"
	"tableflip.dev/journal/pkg/runner/setup"
)

func addSetup(topLevel *cobra.Command, env *session) {
	so := &options.SetupOptions{}

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create the journal and link it to a gist.",
		Long: options.Wrap80("Creates the journal directory and, given a GitHub token with the " +
			"gist scope, mirrors the journal into a secret gist. Running setup again " +
			"with a new token keeps the existing gist and merges both sides."),
		Example: `
journal setup
journal setup --token ghp_xxx
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := env.service()
			if err != nil {
				return err
			}
			s := setup.Setup{
				Service: svc,
				Token:   so.Token,
				Out:     cmd.OutOrStdout(),
			}
			if p := prompter(cmd); p != nil {
				s.Prompter = p
			}
			return s.Do(context.Background())
		},
	}

	options.AddSetupArgs(cmd, so)

	topLevel.AddCommand(cmd)
}
