package panel

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

// Model renders a boxed panel with a title and body lines.
type Model struct {
	title      string
	lines      []string
	width      int
	focused    bool
	frameStyle lipgloss.Style
	focusStyle lipgloss.Style
	titleStyle lipgloss.Style
	bodyStyle  lipgloss.Style
}

// New returns a panel framed by frame, and by focus while focused.
func New(frame, focus, title lipgloss.Style) Model {
	return Model{
		frameStyle: frame,
		focusStyle: focus,
		titleStyle: title,
		bodyStyle:  lipgloss.NewStyle(),
	}
}

// SetContent updates the panel title and body lines.
func (m *Model) SetContent(title string, lines []string) {
	m.title = title
	m.lines = lines
}

// SetWidth fixes the outer width; zero fits the content.
func (m *Model) SetWidth(w int) {
	m.width = w
}

// SetFocused switches the frame style.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// View returns the rendered panel string and its total height in lines.
func (m Model) View() (string, int) {
	var content []string
	if m.title != "" {
		content = append(content, m.titleStyle.Render(m.title))
	}
	for _, line := range m.lines {
		content = append(content, m.bodyStyle.Render(line))
	}
	frame := m.frameStyle
	if m.focused {
		frame = m.focusStyle
	}
	if m.width > 0 {
		frame = frame.Width(m.width - frame.GetHorizontalBorderSize())
	}
	view := frame.Render(strings.Join(content, "\n"))
	height := strings.Count(view, "\n") + 1
	return view, height
}
