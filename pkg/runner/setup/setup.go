// Package setup creates the journal and links it to a gist.
package setup

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/journal/pkg/app"
	"tableflip.dev/journal/pkg/printers"
)

// Secreter asks for the token when none was given.
type Secreter interface {
	Secret(label string) (string, error)
}

type Setup struct {
	Service  *app.Service
	Token    string
	Prompter Secreter
	Out      io.Writer
}

func (n *Setup) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not set up, no service")
	}

	token := n.Token
	if token == "" && n.Prompter != nil {
		var err error
		token, err = n.Prompter.Secret("GitHub token with gist scope (empty to skip sync)")
		if err != nil {
			return err
		}
	}

	res, err := n.Service.Setup(ctx, token)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.Title("Journal")
	pp.Status("stored in %s", res.Path)
	if res.Sync.Configured() {
		pp.Status("synced with gist %s, %d entries", res.Sync.GistID, res.Entries)
	} else {
		pp.Status("sync disabled, %d entries", res.Entries)
	}
	return nil
}
