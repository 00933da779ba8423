package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme centralizes Lip Gloss styles for the dashboard.
type Theme struct {
	Box        lipgloss.Style
	FocusedBox lipgloss.Style
	Title      lipgloss.Style
	Muted      lipgloss.Style
	Calendar   CalendarTheme
	Footer     FooterTheme
	// TagCold and TagHot are the ends of the tag frequency gradient.
	TagCold colorful.Color
	TagHot  colorful.Color
}

// CalendarTheme styles the month grid.
type CalendarTheme struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Empty    lipgloss.Style
	Entry    lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Mode   lipgloss.Style
	Help   lipgloss.Style
	Status lipgloss.Style
}

// New returns the theme for a dark or light terminal background.
func New(dark bool) Theme {
	accent, muted, text := "212", "241", "252"
	cold, hot := "#5A56E0", "#EE6FF8"
	if !dark {
		accent, muted, text = "161", "245", "236"
		cold, hot = "#3C3A9E", "#C2185B"
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(muted)).
		Padding(0, 1)

	return Theme{
		Box:        box,
		FocusedBox: box.BorderForeground(lipgloss.Color(accent)),
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(text)),
		Muted:      lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
		Calendar: CalendarTheme{
			Title:    lipgloss.NewStyle().Bold(true),
			Header:   lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color(muted)),
			Entry:    lipgloss.NewStyle().Foreground(lipgloss.Color(text)).Bold(true),
			Today:    lipgloss.NewStyle().Underline(true),
			Selected: lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Reverse(true),
		},
		Footer: FooterTheme{
			Mode:   lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true),
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
		TagCold: mustHex(cold),
		TagHot:  mustHex(hot),
	}
}

// Default returns the dark theme.
func Default() Theme {
	return New(true)
}

// TagColor blends from cold to hot by count relative to max.
func (t Theme) TagColor(count, max int) string {
	if max <= 1 {
		return t.TagHot.Hex()
	}
	ratio := float64(count-1) / float64(max-1)
	return t.TagCold.BlendLuv(t.TagHot, ratio).Clamped().Hex()
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
