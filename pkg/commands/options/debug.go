package options

import (
	"errors"

	"github.com/spf13/cobra"
)

// DebugOptions
type DebugOptions struct {
	Enable  bool
	Disable bool
	Status  bool
}

func AddDebugArgs(cmd *cobra.Command, o *DebugOptions) {
	cmd.Flags().BoolVar(&o.Enable, "enable", false,
		"Turn debug logging on.")
	cmd.Flags().BoolVar(&o.Disable, "disable", false,
		"Turn debug logging off.")
	cmd.Flags().BoolVar(&o.Status, "status", false,
		"Show whether debug logging is on.")
}

// Validate rejects asking for both states at once.
func (o *DebugOptions) Validate() error {
	if o.Enable && o.Disable {
		return errors.New("--enable and --disable are mutually exclusive")
	}
	return nil
}
