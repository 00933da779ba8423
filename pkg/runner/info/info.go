// Package info reports where the journal and its settings live.
package info

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/journal/pkg/entry"
	"tableflip.dev/journal/pkg/store"
)

type Info struct {
	Config      store.WritableConfig
	Persistence store.Persistence
	JSON        bool
	Out         io.Writer
}

type infoJSON struct {
	Config  string `json:"config"`
	Journal string `json:"journal"`
	Entries int    `json:"entries"`
	Days    int    `json:"days"`
	Gist    string `json:"gist,omitempty"`
	Debug   bool   `json:"debug"`
}

func (n *Info) Do(_ context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("JOURNAL_CONFIG_PATH"); override != "" && !n.JSON {
		_, _ = fmt.Fprintln(out, "JOURNAL_CONFIG_PATH found on env, using", override)
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}

	all, err := n.Persistence.Load()
	if err != nil {
		return err
	}
	sc, err := n.Persistence.LoadSyncConfig()
	if err != nil {
		return err
	}

	days := len(entry.GroupByDate(all))

	if n.JSON {
		b, err := json.MarshalIndent(infoJSON{
			Config:  n.Config.ConfigFile(),
			Journal: n.Persistence.Path(),
			Entries: len(all),
			Days:    days,
			Gist:    sc.GistID,
			Debug:   n.Config.Debug(),
		}, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}

	gist := "not configured"
	if sc.Configured() {
		gist = sc.GistID
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Config"), n.Config.ConfigFile())
	tbl.AddRow(bold.Sprint("Journal"), n.Persistence.Path())
	tbl.AddRow(bold.Sprint("Entries"), len(all))
	tbl.AddRow(bold.Sprint("Days"), days)
	tbl.AddRow(bold.Sprint("Gist"), gist)
	tbl.AddRow(bold.Sprint("Debug"), n.Config.Debug())

	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
