package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/journal/pkg/entry"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a day, example: --on="2023-1-28" or --on="1/28".`)
}

// GetOn returns the date key of the requested day, or "" when --on was not
// given. A short month/day form picks the current year, or the previous one
// when that day is still ahead, since journals only look back.
func (o *OnOptions) GetOn(now time.Time) (string, error) {
	if o.OnString == "" {
		return "", nil
	}
	t, err := time.Parse(layoutISO, o.OnString)
	if err != nil {
		t, err = time.Parse(layoutISOShort, o.OnString)
		if err != nil {
			return "", err
		}
		t = time.Date(now.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		if t.After(now) {
			t = t.AddDate(-1, 0, 0)
		}
	}
	return entry.DayKey(t), nil
}
