package commands

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/journal/pkg/commands/options"
	"tableflip.dev/journal/pkg/prompt"
	"tableflip.dev/journal/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command, env *session) {
	ro := &options.RemoveOptions{}
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:     "remove",
		Aliases: []string{"rm"},
		Short:   "Remove an entry, a whole day, or the newest entry.",
		Example: `
journal remove
journal remove --date
journal remove --date --on 2023-1-28 --yes
journal remove --last
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			on, err := oo.GetOn(time.Now())
			if err != nil {
				return err
			}
			svc, err := env.service()
			if err != nil {
				return err
			}
			r := remove.Remove{
				Service: svc,
				Date:    ro.Date || on != "",
				Last:    ro.Last,
				On:      on,
				Yes:     ro.Yes,
				Out:     cmd.OutOrStdout(),
			}
			if p := prompter(cmd); p != nil {
				r.Prompter = p
			}
			err = r.Do(context.Background())
			if errors.Is(err, prompt.ErrCancelled) {
				return nil
			}
			return err
		},
	}

	options.AddRemoveArgs(cmd, ro)
	options.AddOnArgs(cmd, oo)
	_ = cmd.RegisterFlagCompletionFunc("on", dayCompletions(env))

	topLevel.AddCommand(cmd)
}
