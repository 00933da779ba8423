package commands

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/journal/pkg/commands/options"
	"tableflip.dev/journal/pkg/entry"
	"tableflip.dev/journal/pkg/prompt"
	"tableflip.dev/journal/pkg/runner/list"
	"tableflip.dev/journal/pkg/runner/log"
)

func New() *cobra.Command {
	env := &session{}

	cmd := &cobra.Command{
		Use:   "journal [text...]",
		Short: options.Wrap80("Journaling on the command line, mirrored to a secret GitHub gist."),
		Long: options.Wrap80("With text, journal logs it as a new entry. Without any, it " +
			"shows what was logged today and, in a terminal, asks for a new entry."),
		Example: `
journal shipped the release #work
journal
`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := env.service()
			if err != nil {
				return err
			}
			ctx := context.Background()

			if len(args) > 0 {
				l := log.Log{Service: svc, Args: args, Out: cmd.OutOrStdout()}
				return l.Do(ctx)
			}

			today := list.List{Service: svc, On: entry.DayKey(time.Now()), Out: cmd.OutOrStdout()}
			if err := today.Do(ctx); err != nil {
				return err
			}
			if !interactive() {
				return nil
			}
			l := log.Log{Service: svc, Prompter: &prompt.Prompter{}, Out: cmd.OutOrStdout()}
			if err := l.Do(ctx); !errors.Is(err, prompt.ErrCancelled) {
				return err
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			env.close()
		},
	}

	AddCommands(cmd, env)
	return cmd
}

func AddCommands(topLevel *cobra.Command, env *session) {
	addSetup(topLevel, env)
	addLog(topLevel, env)
	addList(topLevel, env)
	addRemove(topLevel, env)
	addDashboard(topLevel, env)
	addDebug(topLevel, env)
	addInfo(topLevel, env)
	addVersion(topLevel)
	addCompletions(topLevel)
	addUpgrade(topLevel)
}

// interactive reports whether stdin is a terminal a prompt can read from.
func interactive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// prompter returns a terminal prompter, or nil when stdin is not a terminal.
func prompter(cmd *cobra.Command) *prompt.Prompter {
	if !interactive() {
		return nil
	}
	return &prompt.Prompter{Out: cmd.OutOrStdout()}
}
