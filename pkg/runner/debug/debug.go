// Package debug toggles debug logging in the app config.
package debug

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/journal/pkg/printers"
	"tableflip.dev/journal/pkg/store"
)

type Debug struct {
	Config  store.WritableConfig
	Enable  bool
	Disable bool
	Out     io.Writer
}

func (n *Debug) Do(_ context.Context) error {
	if n.Config == nil {
		return errors.New("can not toggle debug, no config")
	}
	switch {
	case n.Enable:
		if err := n.Config.SetDebug(true); err != nil {
			return err
		}
	case n.Disable:
		if err := n.Config.SetDebug(false); err != nil {
			return err
		}
	}

	state := "off"
	if n.Config.Debug() {
		state = "on"
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Status("debug logging %s (%s)", state, n.Config.ConfigFile())
	return nil
}
