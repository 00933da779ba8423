package teaui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/journal/pkg/app"
	"tableflip.dev/journal/pkg/entry"
	"tableflip.dev/journal/pkg/runner/tea/internal/theme"
	"tableflip.dev/journal/pkg/store"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string            { return t.path }
func (t testConfig) Debug() bool                 { return false }
func (t testConfig) SyncDebounce() time.Duration { return time.Second }
func (t testConfig) SyncTimeout() time.Duration  { return time.Second }
func (t testConfig) SyncEndpoint() string        { return "" }

var fixedNow = time.Date(2023, time.January, 2, 12, 0, 0, 0, time.UTC)

var journal = []entry.Entry{
	{Timestamp: "2023-01-01T10:00:00.000Z", Content: "hike #outside"},
	{Timestamp: "2023-01-02T09:00:00.000Z", Content: "standup #work"},
	{Timestamp: "2023-01-02T11:00:00.000Z", Content: "review #work"},
}

func newTestModel(t *testing.T, entries ...entry.Entry) Model {
	t.Helper()
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := p.Save(entries); err != nil {
		t.Fatalf("save: %v", err)
	}
	clock := fixedNow
	svc := &app.Service{Persistence: p, Now: func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}}
	m := newModel(svc, theme.Default(), func() time.Time { return fixedNow })
	return load(t, m)
}

// load runs the model's load command and feeds the result back in.
func load(t *testing.T, m Model) Model {
	t.Helper()
	msg := m.load()()
	return update(t, m, msg)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("expected Model, got %T", next)
	}
	return out
}

func key(s string) tea.KeyPressMsg {
	switch s {
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Text: s, Code: r}
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m = update(t, m, key(string(r)))
	}
	return m
}

func quits(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	switch msg := cmd().(type) {
	case tea.QuitMsg:
		return true
	case tea.BatchMsg:
		for _, c := range msg {
			if quits(c) {
				return true
			}
		}
	}
	return false
}

func stripped(m Model) string {
	return stripANSIString(m.View())
}

func stripANSIString(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
