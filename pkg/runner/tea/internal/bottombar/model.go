package bottombar

import (
	"strings"

	"tableflip.dev/journal/pkg/runner/tea/internal/theme"
)

// Model tracks the footer: the focus label, contextual help and the last
// status message.
type Model struct {
	mode       string
	helpLine   string
	statusLine string
	styles     theme.FooterTheme
}

// New returns a footer model using styles.
func New(styles theme.FooterTheme) Model {
	return Model{styles: styles}
}

// SetMode updates the focus label.
func (m *Model) SetMode(mode string) {
	m.mode = mode
}

// SetHelp sets the contextual help line.
func (m *Model) SetHelp(help string) {
	m.helpLine = help
}

// SetStatus sets the status message to display.
func (m *Model) SetStatus(status string) {
	m.statusLine = status
}

// Status returns the current status message.
func (m Model) Status() string {
	return m.statusLine
}

// View renders the footer string and reports lines consumed.
func (m Model) View() (string, int) {
	var segments []string
	if m.mode != "" {
		segments = append(segments, m.styles.Mode.Render("["+m.mode+"]"))
	}
	if m.helpLine != "" {
		segments = append(segments, m.styles.Help.Render(m.helpLine))
	}
	if m.statusLine != "" {
		segments = append(segments, m.styles.Status.Render(m.statusLine))
	}
	if len(segments) == 0 {
		return " ", 1
	}
	return strings.Join(segments, " │ "), 1
}
