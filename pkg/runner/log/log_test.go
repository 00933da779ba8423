package log

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/journal/pkg/app"
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

type fakeTexter struct {
	text  string
	asked bool
}

func (f *fakeTexter) Text(string) (string, error) {
	f.asked = true
	return f.text, nil
}

func newService(t *testing.T) *app.Service {
	t.Helper()
	color.NoColor = true
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return &app.Service{Persistence: p}
}

func TestLogJoinsArgs(t *testing.T) {
	svc := newService(t)
	prompt := &fakeTexter{}
	var buf bytes.Buffer
	l := Log{Service: svc, Args: []string{"fixed", "the", "build"}, Prompter: prompt, Out: &buf}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if prompt.asked {
		t.Fatalf("did not expect a prompt")
	}
	all, _ := svc.Entries(context.Background())
	if len(all) != 1 || all[0].Content != "fixed the build" {
		t.Fatalf("unexpected journal %+v", all)
	}
	if !strings.Contains(buf.String(), "logged") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestLogPromptsWithoutArgs(t *testing.T) {
	svc := newService(t)
	prompt := &fakeTexter{text: "from the prompt"}
	l := Log{Service: svc, Prompter: prompt, Out: &bytes.Buffer{}}
	if err := l.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	all, _ := svc.Entries(context.Background())
	if !prompt.asked || len(all) != 1 || all[0].Content != "from the prompt" {
		t.Fatalf("unexpected journal %+v", all)
	}
}

func TestLogEmptyWithoutPrompt(t *testing.T) {
	l := Log{Service: newService(t), Out: &bytes.Buffer{}}
	if err := l.Do(context.Background()); !errors.Is(err, app.ErrEmptyEntry) {
		t.Fatalf("expected ErrEmptyEntry, got %v", err)
	}
}
