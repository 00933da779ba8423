package setup

import (
	"bytes"
	"context"
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

type fakeSecreter struct {
	asked bool
}

func (f *fakeSecreter) Secret(string) (string, error) {
	f.asked = true
	return "", nil
}

func TestSetupWithoutTokenDisablesSync(t *testing.T) {
	color.NoColor = true
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	prompt := &fakeSecreter{}
	var buf bytes.Buffer
	s := Setup{Service: &app.Service{Persistence: p}, Prompter: prompt, Out: &buf}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("do: %v", err)
	}
	if !prompt.asked {
		t.Fatalf("expected token prompt")
	}
	if !strings.Contains(buf.String(), "sync disabled") || !strings.Contains(buf.String(), p.Path()) {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
