// Package remove deletes entries picked interactively or by position.
package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/journal/pkg/app"
	"tableflip.dev/journal/pkg/entry"
	"tableflip.dev/journal/pkg/printers"
	"tableflip.dev/journal/pkg/store"
)

// Picker chooses what to remove.
type Picker interface {
	SelectEntry(label string, entries []entry.Entry) (int, error)
	SelectDay(label string, days []string, groups entry.Groups) (int, error)
	Confirm(label string) (bool, error)
}

type Remove struct {
	Service  *app.Service
	Prompter Picker
	// Date removes a whole day, Last the newest entry. Neither picks a
	// single entry.
	Date bool
	Last bool
	// On preselects the day for Date.
	On  string
	Yes bool
	Out io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	pp := printers.PrettyPrint{Out: n.Out}

	var err error
	switch {
	case n.Last:
		err = n.last(ctx, &pp)
	case n.Date:
		err = n.day(ctx, &pp)
	default:
		err = n.one(ctx, &pp)
	}
	if errors.Is(err, store.ErrNoEntries) {
		pp.Status("nothing to remove")
		return nil
	}
	return err
}

func (n *Remove) last(ctx context.Context, pp *printers.PrettyPrint) error {
	removed, err := n.Service.RemoveLast(ctx)
	if err != nil {
		return err
	}
	pp.Status("removed %s %s", removed.DateKey(), removed.String())
	return nil
}

func (n *Remove) day(ctx context.Context, pp *printers.PrettyPrint) error {
	l, err := n.Service.List(ctx, app.ListOptions{Order: entry.Descending})
	if err != nil {
		return err
	}
	if len(l.Days) == 0 {
		return store.ErrNoEntries
	}

	day := n.On
	if day == "" {
		if n.Prompter == nil {
			return errors.New("no day given and no prompt available")
		}
		i, err := n.Prompter.SelectDay("Day to remove", l.Days, l.Groups)
		if err != nil {
			return err
		}
		day = l.Days[i]
	}
	if _, ok := l.Groups[day]; !ok {
		return fmt.Errorf("no entries on %s", day)
	}

	if !n.Yes {
		if n.Prompter == nil {
			return errors.New("refusing to remove a day without confirmation, pass --yes")
		}
		ok, err := n.Prompter.Confirm(fmt.Sprintf("Remove all %d entries of %s", len(l.Groups[day]), entry.DayTitle(day)))
		if err != nil {
			return err
		}
		if !ok {
			pp.Status("kept %s", entry.DayTitle(day))
			return nil
		}
	}

	removed, err := n.Service.RemoveDay(ctx, day)
	if err != nil {
		return err
	}
	pp.Status("removed %d entries from %s", len(removed), entry.DayTitle(day))
	return nil
}

func (n *Remove) one(ctx context.Context, pp *printers.PrettyPrint) error {
	all, err := n.Service.Entries(ctx)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		return store.ErrNoEntries
	}
	if n.Prompter == nil {
		return errors.New("no entry given and no prompt available")
	}
	entry.SortDescending(all)

	i, err := n.Prompter.SelectEntry("Entry to remove", all)
	if err != nil {
		return err
	}
	removed, err := n.Service.RemoveByTimestamp(ctx, all[i].Timestamp)
	if err != nil {
		return err
	}
	for _, e := range removed {
		pp.Status("removed %s %s", e.DateKey(), e.String())
	}
	return nil
}
