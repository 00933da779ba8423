// Package list prints the journal grouped by day.
package list

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/journal/pkg/app"
	"tableflip.dev/journal/pkg/entry"
	"tableflip.dev/journal/pkg/printers"
	"tableflip.dev/journal/pkg/syncer"
)

type List struct {
	Service *app.Service
	Limit   int
	Reverse bool
	Sync    bool
	Tags    bool
	JSON    bool
	// On restricts the listing to a single date key.
	On  string
	Out io.Writer
}

type dayJSON struct {
	Date    string        `json:"date"`
	Entries []entry.Entry `json:"entries"`
}

type tagJSON struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

func (n *List) out() io.Writer {
	if n.Out != nil {
		return n.Out
	}
	return color.Output
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no service")
	}

	opts := app.ListOptions{Order: entry.Ascending, Limit: n.Limit, Sync: n.Sync}
	if n.Reverse {
		opts.Order = entry.Descending
	}
	if n.On != "" {
		opts.Limit = 0
	}
	l, err := n.Service.List(ctx, opts)
	if err != nil {
		return err
	}
	if n.On != "" {
		l.Days = nil
		if _, ok := l.Groups[n.On]; ok {
			l.Days = []string{n.On}
		}
	}

	if n.Tags {
		return n.printTags(entry.Tags(l.Entries()))
	}
	if n.JSON {
		days := make([]dayJSON, 0, len(l.Days))
		for _, d := range l.Days {
			days = append(days, dayJSON{Date: d, Entries: l.Groups[d]})
		}
		return n.printJSON(days)
	}

	pp := printers.PrettyPrint{Out: n.out()}
	if len(l.Days) == 0 {
		if n.On != "" {
			pp.Title(entry.DayTitle(n.On))
		}
		pp.Entries()
	}
	for _, d := range l.Days {
		pp.Day(d, l.Groups[d])
	}
	if n.Sync && l.Sync != syncer.StatusDisabled {
		pp.Status("sync: %s", l.Sync)
	}
	return nil
}

func (n *List) printTags(tags []entry.TagCount) error {
	if n.JSON {
		out := make([]tagJSON, 0, len(tags))
		for _, t := range tags {
			out = append(out, tagJSON{Tag: t.Tag, Count: t.Count})
		}
		return n.printJSON(out)
	}
	pp := printers.PrettyPrint{Out: n.out()}
	pp.Tags(tags)
	return nil
}

func (n *List) printJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(n.out(), string(b))
	return err
}
