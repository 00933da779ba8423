package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/journal/pkg/entry"
)

const defaultWidth = 80

// PrettyPrint renders journal days for humans.
type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
	// Width is the wrap width for entry content, 80 when zero.
	Width int
}

var (
	spacing = strings.Repeat(" ", len("15:04  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) width() int {
	if pp.Width > 0 {
		return pp.Width
	}
	return defaultWidth
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// Day prints one day: its title, entry count and entries oldest first.
func (pp *PrettyPrint) Day(dateKey string, entries []entry.Entry) {
	pp.TitleWithCount(entry.DayTitle(dateKey), len(entries))
	pp.Entries(entries...)
}

// Entries prints each entry as its local clock time followed by the content,
// wrapped and hanging-indented under the clock column.
func (pp *PrettyPrint) Entries(entries ...entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Faint)

	for _, e := range entries {
		lines := strings.Split(wordwrap.String(e.Content, pp.width()-len(spacing)), "\n")
		_, _ = y.Fprint(pp.out(), entry.Clock(e))
		_, _ = t.Fprint(pp.out(), spacing[len("15:04"):])
		_, _ = t.Fprintln(pp.out(), lines[0])
		for _, l := range lines[1:] {
			_, _ = t.Fprintln(pp.out(), spacing+l)
		}
	}
	_, _ = t.Fprintln(pp.out(), "")
}

// Tags prints a tag frequency table.
func (pp *PrettyPrint) Tags(tags []entry.TagCount) {
	if len(tags) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " no tags\n\n")
		return
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Tag"), bold.Sprint("Count"))
	for _, tc := range tags {
		tbl.AddRow("#"+tc.Tag, tc.Count)
	}
	tbl.RightAlign(1)

	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Status prints a faint one-line notice.
func (pp *PrettyPrint) Status(format string, args ...interface{}) {
	c := color.New(color.Faint)
	_, _ = c.Fprintf(pp.out(), format+"\n", args...)
}
