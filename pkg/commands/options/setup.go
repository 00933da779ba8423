package options

import (
	"github.com/spf13/cobra"
)

// SetupOptions
type SetupOptions struct {
	Token string
}

func AddSetupArgs(cmd *cobra.Command, o *SetupOptions) {
	cmd.Flags().StringVar(&o.Token, "token", "",
		`GitHub token with the "gist" scope. Prompted for when omitted.`)
}
