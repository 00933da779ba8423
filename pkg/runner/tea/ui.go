package teaui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/journal/pkg/app"
	"tableflip.dev/journal/pkg/entry"
	"tableflip.dev/journal/pkg/runner/tea/internal/bottombar"
	"tableflip.dev/journal/pkg/runner/tea/internal/calendar"
	"tableflip.dev/journal/pkg/runner/tea/internal/panel"
	"tableflip.dev/journal/pkg/runner/tea/internal/theme"
	"tableflip.dev/journal/pkg/store"
)

// view is the focused part of the dashboard.
type view int

const (
	ListView view = iota
	InputView
	EditingText
)

func (v view) String() string {
	switch v {
	case ListView:
		return "LIST"
	case InputView:
		return "INPUT"
	case EditingText:
		return "EDIT"
	default:
		return fmt.Sprintf("view(%d)", int(v))
	}
}

const (
	leftWidth = 26
	maxTags   = 8
)

var helpText = map[view]string{
	ListView:    "h/l day  j/k move  t today  tab input  e write  q quit",
	InputView:   "enter write  tab/esc list  q quit",
	EditingText: "enter save  esc cancel",
}

// entryItem is one journal line in the day list.
type entryItem struct{ e entry.Entry }

func (it entryItem) Title() string       { return it.e.String() }
func (it entryItem) Description() string { return "" }
func (it entryItem) FilterValue() string { return it.e.Content }

// messages
type errMsg struct{ err error }
type entriesLoadedMsg struct{ entries []entry.Entry }
type storeEventMsg struct{ ev store.Event }

// Model contains dashboard state.
type Model struct {
	svc   *app.Service
	ctx   context.Context
	now   func() time.Time
	theme theme.Theme

	state view

	entries  []entry.Entry
	groups   entry.Groups
	tags     []entry.TagCount
	selected time.Time

	dayList  list.Model
	input    textinput.Model
	calPanel panel.Model
	tagPanel panel.Model
	footer   bottombar.Model

	events <-chan store.Event

	termWidth  int
	termHeight int
}

// New creates a dashboard model backed by the Service.
func New(svc *app.Service, th theme.Theme) Model {
	return newModel(svc, th, time.Now)
}

func newModel(svc *app.Service, th theme.Theme, now func() time.Time) Model {
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	d.SetSpacing(0)

	l := list.New([]list.Item{}, d, 60, 16)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	ti := textinput.New()
	ti.Placeholder = "What happened?"
	ti.CharLimit = 1024
	ti.Prompt = "> "

	m := Model{
		svc:      svc,
		ctx:      context.Background(),
		now:      now,
		theme:    th,
		state:    ListView,
		groups:   entry.Groups{},
		selected: day(now()),
		dayList:  l,
		input:    ti,
		calPanel: panel.New(th.Box, th.FocusedBox, th.Title),
		tagPanel: panel.New(th.Box, th.FocusedBox, th.Title),
		footer:   bottombar.New(th.Footer),
	}
	m.calPanel.SetWidth(leftWidth)
	m.tagPanel.SetWidth(leftWidth)
	m.setState(ListView)
	m.rebuild()
	return m
}

// day truncates t to its UTC calendar day, the unit entries are grouped by.
func day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Init loads the journal and starts listening for store changes.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.watch())
}

func (m Model) load() tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		if svc == nil {
			return entriesLoadedMsg{}
		}
		all, err := svc.Entries(ctx)
		if err != nil {
			return errMsg{err}
		}
		return entriesLoadedMsg{all}
	}
}

func (m Model) watch() tea.Cmd {
	events := m.events
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return storeEventMsg{ev}
	}
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case errMsg:
		m.footer.SetStatus("ERR: " + msg.err.Error())
	case entriesLoadedMsg:
		m.setEntries(msg.entries)
	case storeEventMsg:
		if msg.ev.Type == store.EventEntriesChanged {
			cmds = append(cmds, m.load())
		}
		cmds = append(cmds, m.watch())
	case tea.KeyPressMsg:
		switch m.state {
		case ListView:
			cmds = append(cmds, m.updateList(msg))
		case InputView:
			cmds = append(cmds, m.updateInput(msg))
		case EditingText:
			cmds = append(cmds, m.updateEditing(msg))
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateList(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "tab", "i":
		m.setState(InputView)
	case "e", "enter":
		return m.startEditing()
	case "left", "h":
		m.moveDay(-1)
	case "right", "l":
		m.moveDay(1)
	case "t":
		m.selected = day(m.now())
		m.rebuild()
	case "down", "j":
		m.dayList.CursorDown()
	case "up", "k":
		m.dayList.CursorUp()
	}
	return nil
}

func (m *Model) updateInput(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		return tea.Quit
	case "tab", "esc":
		m.setState(ListView)
	case "enter":
		return m.startEditing()
	}
	return nil
}

func (m *Model) updateEditing(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		m.input.Reset()
		m.setState(ListView)
		m.footer.SetStatus("Cancelled")
		return nil
	case "enter":
		return m.submit()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) startEditing() tea.Cmd {
	m.setState(EditingText)
	return tea.Batch(m.input.Focus(), textinput.Blink)
}

// submit logs the input through the Service, the same path the CLI uses, so
// the background sync is triggered as well.
func (m *Model) submit() tea.Cmd {
	content := strings.TrimSpace(m.input.Value())
	if content == "" {
		m.footer.SetStatus("Nothing to log")
		return nil
	}
	if m.svc == nil {
		m.footer.SetStatus("ERR: no journal")
		return nil
	}
	e, err := m.svc.Log(m.ctx, content)
	if err != nil {
		m.footer.SetStatus("ERR: " + err.Error())
		return nil
	}
	m.input.Reset()
	m.setState(ListView)
	m.footer.SetStatus("Logged " + entry.Clock(e))

	if t := e.Time(); !t.IsZero() {
		m.selected = day(t)
	}
	m.entries = append(entry.Clone(m.entries), e)
	m.rebuild()
	m.dayList.Select(len(m.dayList.Items()) - 1)
	return m.load()
}

func (m *Model) setState(s view) {
	m.state = s
	if s == EditingText {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	m.calPanel.SetFocused(s == ListView)
	m.footer.SetMode(s.String())
	m.footer.SetHelp(helpText[s])
}

func (m *Model) moveDay(delta int) {
	m.selected = m.selected.AddDate(0, 0, delta)
	m.rebuild()
}

func (m *Model) setEntries(all []entry.Entry) {
	m.entries = all
	m.rebuild()
}

func (m *Model) selectedKey() string {
	return entry.DayKey(m.selected)
}

// rebuild derives groups, tags, the day list and both side panels from the
// in-memory entries.
func (m *Model) rebuild() {
	m.groups = entry.GroupByDate(m.entries)
	m.tags = entry.Tags(m.entries)

	key := m.selectedKey()
	items := make([]list.Item, 0, len(m.groups[key]))
	for _, e := range m.groups[key] {
		items = append(items, entryItem{e: e})
	}
	idx := m.dayList.Index()
	m.dayList.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.dayList.Select(idx)
	}
	m.dayList.Title = fmt.Sprintf("%s (%d)", entry.DayTitle(key), len(items))

	days := calendar.Month(m.selected, m.groups, entry.DayKey(m.now()), key)
	grid := calendar.Render(m.selected, days, calendar.Options{
		TitleStyle:    m.theme.Calendar.Title,
		HeaderStyle:   m.theme.Calendar.Header,
		EmptyStyle:    m.theme.Calendar.Empty,
		EntryStyle:    m.theme.Calendar.Entry,
		TodayStyle:    m.theme.Calendar.Today,
		SelectedStyle: m.theme.Calendar.Selected,
		ShowTitle:     true,
		ShowHeader:    true,
	})
	m.calPanel.SetContent("", strings.Split(grid, "\n"))

	m.tagPanel.SetContent("Tags", m.tagLines())
}

func (m *Model) tagLines() []string {
	if len(m.tags) == 0 {
		return []string{m.theme.Muted.Render("no #tags yet")}
	}
	shown := m.tags
	if len(shown) > maxTags {
		shown = shown[:maxTags]
	}
	top := shown[0].Count
	lines := make([]string, 0, len(shown))
	for _, tc := range shown {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.TagColor(tc.Count, top)))
		lines = append(lines, fmt.Sprintf("%s %d", style.Render("#"+tc.Tag), tc.Count))
	}
	return lines
}

// View renders the calendar and tags on the left, the day list and input on
// the right, and the footer below.
func (m Model) View() string {
	cal, _ := m.calPanel.View()
	tags, _ := m.tagPanel.View()
	left := lipgloss.JoinVertical(lipgloss.Left, cal, tags)

	listBox := m.theme.Box
	inputBox := m.theme.Box
	switch m.state {
	case ListView:
		listBox = m.theme.FocusedBox
	default:
		inputBox = m.theme.FocusedBox
	}
	right := lipgloss.JoinVertical(lipgloss.Left,
		listBox.Render(m.dayList.View()),
		inputBox.Render(m.input.View()),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	footer, _ := m.footer.View()
	return body + "\n" + footer
}

// applySizes recalculates the list and input sizes from the terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	right := m.termWidth - leftWidth - 1 - 4
	if right < 20 {
		right = 20
	}
	// input box (3) plus footer (1) plus list borders (2)
	height := m.termHeight - 6
	if height < 5 {
		height = 5
	}
	m.dayList.SetSize(right, height)
}
