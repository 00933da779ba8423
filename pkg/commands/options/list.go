package options

import (
	"github.com/spf13/cobra"
)

// ListOptions
type ListOptions struct {
	Limit   int
	Reverse bool
	Sync    bool
	Tags    bool
}

func AddListArgs(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().IntVarP(&o.Limit, "limit", "n", 0,
		"Show at most this many days. Zero shows all of them.")
	cmd.Flags().BoolVarP(&o.Reverse, "reverse", "r", false,
		"Show the newest days first.")
	cmd.Flags().BoolVar(&o.Sync, "sync", false,
		"Sync with the remote gist before listing.")
	cmd.Flags().BoolVarP(&o.Tags, "tags", "t", false,
		"Show #tag counts instead of entries.")
}
