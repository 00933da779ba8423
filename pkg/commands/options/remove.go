package options

import (
	"github.com/spf13/cobra"
)

// RemoveOptions
type RemoveOptions struct {
	Date bool
	Last bool
	Yes  bool
}

func AddRemoveArgs(cmd *cobra.Command, o *RemoveOptions) {
	cmd.Flags().BoolVarP(&o.Date, "date", "d", false,
		"Pick a day and remove all of its entries.")
	cmd.Flags().BoolVarP(&o.Last, "last", "l", false,
		"Remove the newest entry.")
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Do not ask for confirmation.")
}
