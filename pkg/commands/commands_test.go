package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("JOURNAL_CONFIG_PATH", t.TempDir())
	t.Setenv("JOURNAL_PATH", t.TempDir())
	color.NoColor = true

	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("journal %s: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestCommandTree(t *testing.T) {
	cmd := New()
	for _, name := range []string{"setup", "log", "list", "remove", "dashboard", "debug", "info", "version", "completion"} {
		found, _, err := cmd.Find([]string{name})
		if err != nil || found.Name() != name {
			t.Fatalf("expected %q subcommand, got %v (%v)", name, found, err)
		}
	}
}

func TestBareInvocationLogs(t *testing.T) {
	out := run(t, "hello", "world")
	if !strings.Contains(out, "logged") || !strings.Contains(out, "hello world") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestListJSONErrorShape(t *testing.T) {
	out := run(t, "list", "--json", "--on", "not-a-date")
	var got map[string]string
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if got["error"] == "" {
		t.Fatalf("expected error field in %q", out)
	}
}

func TestVersionShort(t *testing.T) {
	out := run(t, "version", "--short")
	if !strings.Contains(out, "dev") {
		t.Fatalf("unexpected output %q", out)
	}
}
