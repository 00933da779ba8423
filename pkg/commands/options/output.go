package options

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// OutputOptions selects machine-readable output.
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

type errorJSON struct {
	Error string `json:"error"`
}

// HandleError renders err as {"error": ...} on the command's output when JSON
// is requested, and swallows it so the process still exits cleanly for
// scripts reading stdout. Otherwise err is returned unchanged.
func (o *OutputOptions) HandleError(cmd *cobra.Command, err error) error {
	if !o.JSON || err == nil {
		return err
	}
	b, merr := json.Marshal(errorJSON{Error: err.Error()})
	if merr != nil {
		return merr
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}
