// Package log appends entries to the journal from the command line.
package log

import (
	"context"
	"errors"
	"io"
	"strings"

	"tableflip.dev/journal/pkg/app"
	"tableflip.dev/journal/pkg/printers"
)

// Texter asks for entry text when none was given.
type Texter interface {
	Text(label string) (string, error)
}

type Log struct {
	Service *app.Service
	Args    []string
	// Prompter is consulted only when Args is empty. Without one an empty
	// entry is an error.
	Prompter Texter
	Out      io.Writer
}

func (n *Log) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not log, no service")
	}

	content := strings.TrimSpace(strings.Join(n.Args, " "))
	if content == "" && n.Prompter != nil {
		var err error
		content, err = n.Prompter.Text("What happened")
		if err != nil {
			return err
		}
	}

	e, err := n.Service.Log(ctx, content)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.Status("logged %s", e.String())
	return nil
}
