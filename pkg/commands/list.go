package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/journal/pkg/commands/options"
	"tableflip.dev/journal/pkg/runner/list"
)

func addList(topLevel *cobra.Command, env *session) {
	lo := &options.ListOptions{}
	oo := &options.OnOptions{}
	jo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List entries grouped by day.",
		Example: `
journal list
journal list --limit 7
journal list --reverse --on 1/28
journal list --tags
journal list --sync --json
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runList(cmd, env, lo, oo, jo)
			return jo.HandleError(cmd, err)
		},
	}

	options.AddListArgs(cmd, lo)
	options.AddOnArgs(cmd, oo)
	options.AddOutputArg(cmd, jo)
	_ = cmd.RegisterFlagCompletionFunc("on", dayCompletions(env))

	topLevel.AddCommand(cmd)
}

func runList(cmd *cobra.Command, env *session, lo *options.ListOptions, oo *options.OnOptions, jo *options.OutputOptions) error {
	on, err := oo.GetOn(time.Now())
	if err != nil {
		return err
	}
	svc, err := env.service()
	if err != nil {
		return err
	}
	l := list.List{
		Service: svc,
		Limit:   lo.Limit,
		Reverse: lo.Reverse,
		Sync:    lo.Sync,
		Tags:    lo.Tags,
		JSON:    jo.JSON,
		On:      on,
		Out:     cmd.OutOrStdout(),
	}
	return l.Do(context.Background())
}
