package remove

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/journal/pkg/app"
	"tableflip.dev/journal/pkg/entry"
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

type fakePicker struct {
	entry   int
	day     int
	confirm bool

	offered []entry.Entry
	days    []string
}

func (f *fakePicker) SelectEntry(_ string, entries []entry.Entry) (int, error) {
	f.offered = entries
	return f.entry, nil
}

func (f *fakePicker) SelectDay(_ string, days []string, _ entry.Groups) (int, error) {
	f.days = days
	return f.day, nil
}

func (f *fakePicker) Confirm(string) (bool, error) {
	return f.confirm, nil
}

var journal = []entry.Entry{
	{Timestamp: "2023-01-01T10:00:00.000Z", Content: "a"},
	{Timestamp: "2023-01-02T09:00:00.000Z", Content: "b"},
	{Timestamp: "2023-01-02T18:00:00.000Z", Content: "c"},
}

func newService(t *testing.T, entries ...entry.Entry) *app.Service {
	t.Helper()
	color.NoColor = true
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := p.Save(entries); err != nil {
		t.Fatalf("save: %v", err)
	}
	return &app.Service{Persistence: p}
}

func contents(t *testing.T, svc *app.Service) string {
	t.Helper()
	all, err := svc.Entries(context.Background())
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	var out []string
	for _, e := range all {
		out = append(out, e.Content)
	}
	return strings.Join(out, ",")
}

func TestRemovePickedEntry(t *testing.T) {
	svc := newService(t, journal...)
	picker := &fakePicker{entry: 0}
	r := Remove{Service: svc, Prompter: picker, Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if picker.offered[0].Content != "c" {
		t.Fatalf("expected newest entry offered first, got %+v", picker.offered)
	}
	if got := contents(t, svc); got != "a,b" {
		t.Fatalf("unexpected journal %q", got)
	}
}

func TestRemoveDayConfirmed(t *testing.T) {
	svc := newService(t, journal...)
	var buf bytes.Buffer
	r := Remove{Service: svc, Prompter: &fakePicker{day: 0, confirm: true}, Date: true, Out: &buf}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if got := contents(t, svc); got != "a" {
		t.Fatalf("unexpected journal %q", got)
	}
	if !strings.Contains(buf.String(), "removed 2 entries") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestRemoveDayDeclined(t *testing.T) {
	svc := newService(t, journal...)
	r := Remove{Service: svc, Prompter: &fakePicker{day: 1}, Date: true, Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if got := contents(t, svc); got != "a,b,c" {
		t.Fatalf("expected nothing removed, got %q", got)
	}
}

func TestRemoveDayOnWithoutPrompt(t *testing.T) {
	svc := newService(t, journal...)
	r := Remove{Service: svc, Date: true, On: "2023-01-01", Yes: true, Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if got := contents(t, svc); got != "b,c" {
		t.Fatalf("unexpected journal %q", got)
	}

	r.On = "2023-05-05"
	if err := r.Do(context.Background()); err == nil {
		t.Fatalf("expected error for a day without entries")
	}
}

func TestRemoveLast(t *testing.T) {
	svc := newService(t, journal...)
	r := Remove{Service: svc, Last: true, Out: &bytes.Buffer{}}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if got := contents(t, svc); got != "a,b" {
		t.Fatalf("unexpected journal %q", got)
	}
}

func TestRemoveFromEmptyJournal(t *testing.T) {
	var buf bytes.Buffer
	r := Remove{Service: newService(t), Last: true, Out: &buf}
	if err := r.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if !strings.Contains(buf.String(), "nothing to remove") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
