package commands

import (
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/journal/pkg/entry"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(journal completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(journal completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// dayCompletions offers the days that have entries, newest first.
func dayCompletions(env *session) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		p, err := env.persistence()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		all, err := p.Load()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return entry.GroupByDate(all).Days(entry.Descending, 0), cobra.ShellCompDirectiveNoFileComp
	}
}
