package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/journal/pkg/prompt"
	"tableflip.dev/journal/pkg/runner/log"
)

func addLog(topLevel *cobra.Command, env *session) {
	cmd := &cobra.Command{
		Use:   "log [text...]",
		Short: "Log a new entry.",
		Example: `
journal log reviewed the design doc #work
journal log
`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := env.service()
			if err != nil {
				return err
			}
			l := log.Log{
				Service: svc,
				Args:    args,
				Out:     cmd.OutOrStdout(),
			}
			if p := prompter(cmd); p != nil {
				l.Prompter = p
			}
			err = l.Do(context.Background())
			if errors.Is(err, prompt.ErrCancelled) {
				return nil
			}
			return err
		},
	}

	topLevel.AddCommand(cmd)
}
