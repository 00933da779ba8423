package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"tableflip.dev/journal/pkg/entry"
	"tableflip.dev/journal/pkg/store"
	"tableflip.dev/journal/pkg/syncer"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string            { return t.path }
func (t testConfig) Debug() bool                 { return false }
func (t testConfig) SyncDebounce() time.Duration { return syncer.DefaultDebounce }
func (t testConfig) SyncTimeout() time.Duration  { return time.Second }
func (t testConfig) SyncEndpoint() string        { return "" }

type memoryRemote struct {
	mu      sync.Mutex
	gists   map[string][]entry.Entry
	updates int
}

func newMemoryRemote() *memoryRemote {
	return &memoryRemote{gists: make(map[string][]entry.Entry)}
}

func (m *memoryRemote) factory(string) (syncer.Remote, error) { return m, nil }

func (m *memoryRemote) Create(_ context.Context, entries []entry.Entry) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gists["created"] = entry.Clone(entries)
	return "created", nil
}

func (m *memoryRemote) Fetch(_ context.Context, id string) ([]entry.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return entry.Clone(m.gists[id]), nil
}

func (m *memoryRemote) Update(_ context.Context, id string, entries []entry.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates++
	m.gists[id] = entry.Clone(entries)
	return nil
}

func (m *memoryRemote) Reachable(context.Context) bool { return true }

func (m *memoryRemote) updateCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updates
}

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time {
	c.t = c.t.Add(time.Minute)
	return c.t
}

func newService(t *testing.T, remote *memoryRemote) *Service {
	t.Helper()
	p, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	c := &clock{t: time.Date(2023, time.January, 1, 9, 0, 0, 0, time.UTC)}
	svc := &Service{Persistence: p, Now: c.now}
	if remote != nil {
		svc.Syncer = syncer.New(p, remote.factory, syncer.Options{})
	}
	return svc
}

func TestLogTrimsAndRejectsEmpty(t *testing.T) {
	svc := newService(t, nil)
	ctx := context.Background()

	if _, err := svc.Log(ctx, "   "); !errors.Is(err, ErrEmptyEntry) {
		t.Fatalf("expected ErrEmptyEntry, got %v", err)
	}
	e, err := svc.Log(ctx, "  hello  ")
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if e.Content != "hello" || e.Timestamp != "2023-01-01T09:01:00.000Z" {
		t.Fatalf("unexpected entry %+v", e)
	}
	all, err := svc.Entries(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("expected 1 entry, got %d (%v)", len(all), err)
	}
}

func TestNilPersistence(t *testing.T) {
	svc := &Service{}
	if _, err := svc.Log(context.Background(), "x"); !errors.Is(err, ErrNoPersistence) {
		t.Fatalf("expected ErrNoPersistence, got %v", err)
	}
	if _, err := svc.List(context.Background(), ListOptions{}); !errors.Is(err, ErrNoPersistence) {
		t.Fatalf("expected ErrNoPersistence, got %v", err)
	}
}

func TestLogTriggersBackgroundSync(t *testing.T) {
	remote := newMemoryRemote()
	svc := newService(t, remote)
	if err := svc.Persistence.SaveSyncConfig(store.SyncConfig{Token: "tok", GistID: "g1"}); err != nil {
		t.Fatalf("save sync config: %v", err)
	}

	ctx := context.Background()
	if _, err := svc.Log(ctx, "first"); err != nil {
		t.Fatalf("log: %v", err)
	}
	if _, err := svc.Log(ctx, "second"); err != nil {
		t.Fatalf("log: %v", err)
	}
	if !svc.Syncer.Drain(time.Second) {
		t.Fatalf("background sync did not finish")
	}
	if n := remote.updateCount(); n != 1 {
		t.Fatalf("expected one debounced push, got %d", n)
	}
}

func TestLogWithoutSyncConfigDoesNotPush(t *testing.T) {
	remote := newMemoryRemote()
	svc := newService(t, remote)
	if _, err := svc.Log(context.Background(), "offline"); err != nil {
		t.Fatalf("log: %v", err)
	}
	svc.Syncer.Drain(time.Second)
	if n := remote.updateCount(); n != 0 {
		t.Fatalf("expected no push, got %d", n)
	}
}

func TestListLimitsDays(t *testing.T) {
	svc := newService(t, nil)
	for _, e := range []entry.Entry{
		{Timestamp: "2023-01-01T10:00:00.000Z", Content: "a"},
		{Timestamp: "2023-01-02T10:00:00.000Z", Content: "b"},
		{Timestamp: "2023-01-03T08:00:00.000Z", Content: "c"},
		{Timestamp: "2023-01-03T10:00:00.000Z", Content: "d"},
	} {
		all, _ := svc.Persistence.Load()
		if err := svc.Persistence.Save(append(all, e)); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	l, err := svc.List(context.Background(), ListOptions{Order: entry.Descending, Limit: 1})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(l.Days) != 1 || l.Days[0] != "2023-01-03" {
		t.Fatalf("expected newest day only, got %v", l.Days)
	}
	got := l.Entries()
	if len(got) != 2 || got[0].Content != "c" || got[1].Content != "d" {
		t.Fatalf("expected whole day oldest first, got %+v", got)
	}

	l, err = svc.List(context.Background(), ListOptions{Limit: 1})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(l.Days) != 1 || l.Days[0] != "2023-01-01" {
		t.Fatalf("expected oldest day only, got %v", l.Days)
	}
	if l.Sync != syncer.StatusDisabled {
		t.Fatalf("expected sync disabled, got %v", l.Sync)
	}
}

func TestListWithSyncStoresMerge(t *testing.T) {
	remote := newMemoryRemote()
	remote.gists["g1"] = []entry.Entry{{Timestamp: "2023-01-01T08:00:00.000Z", Content: "from laptop"}}
	svc := newService(t, remote)
	if err := svc.Persistence.SaveSyncConfig(store.SyncConfig{Token: "tok", GistID: "g1"}); err != nil {
		t.Fatalf("save sync config: %v", err)
	}
	if err := svc.Persistence.Save([]entry.Entry{{Timestamp: "2023-01-01T10:00:00.000Z", Content: "from desktop"}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	l, err := svc.List(context.Background(), ListOptions{Sync: true})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if l.Sync != syncer.StatusMerged || l.Total != 2 {
		t.Fatalf("expected merged listing of 2, got %v/%d", l.Sync, l.Total)
	}
	stored, _ := svc.Persistence.Load()
	if len(stored) != 2 || stored[0].Content != "from desktop" {
		t.Fatalf("expected merged journal stored newest first, got %+v", stored)
	}
}

func TestRemoveLast(t *testing.T) {
	svc := newService(t, nil)
	ctx := context.Background()
	t1, _ := svc.Log(ctx, "T1")
	t2, _ := svc.Log(ctx, "T2")

	removed, err := svc.RemoveLast(ctx)
	if err != nil {
		t.Fatalf("remove last: %v", err)
	}
	if removed != t2 {
		t.Fatalf("expected %+v, got %+v", t2, removed)
	}
	all, _ := svc.Entries(ctx)
	if len(all) != 1 || all[0] != t1 {
		t.Fatalf("expected only T1, got %+v", all)
	}
}

func TestRemoveDayAndTimestamp(t *testing.T) {
	svc := newService(t, nil)
	ctx := context.Background()
	a, _ := svc.Log(ctx, "a")
	if _, err := svc.Log(ctx, "b"); err != nil {
		t.Fatalf("log: %v", err)
	}

	removed, err := svc.RemoveByTimestamp(ctx, a.Timestamp)
	if err != nil || len(removed) != 1 {
		t.Fatalf("expected one removal, got %d (%v)", len(removed), err)
	}
	removed, err = svc.RemoveDay(ctx, "2023-01-01")
	if err != nil || len(removed) != 1 {
		t.Fatalf("expected one removal, got %d (%v)", len(removed), err)
	}
	if _, err := svc.RemoveLast(ctx); !errors.Is(err, store.ErrNoEntries) {
		t.Fatalf("expected ErrNoEntries, got %v", err)
	}
}

func TestSetupWithoutToken(t *testing.T) {
	svc := newService(t, newMemoryRemote())
	res, err := svc.Setup(context.Background(), "")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if res.Sync.Configured() || res.Path != svc.Persistence.Path() {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestSetupAdoptsRemote(t *testing.T) {
	remote := newMemoryRemote()
	remote.gists["g1"] = []entry.Entry{{Timestamp: "2023-01-01T08:00:00.000Z", Content: "remote"}}
	svc := newService(t, remote)
	if err := svc.Persistence.SaveSyncConfig(store.SyncConfig{GistID: "g1"}); err != nil {
		t.Fatalf("save sync config: %v", err)
	}

	res, err := svc.Setup(context.Background(), "tok")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if res.Sync.GistID != "g1" || res.Entries != 1 {
		t.Fatalf("unexpected result %+v", res)
	}
	all, _ := svc.Entries(context.Background())
	if len(all) != 1 || all[0].Content != "remote" {
		t.Fatalf("expected remote adopted locally, got %+v", all)
	}
	if remote.updateCount() != 0 {
		t.Fatalf("expected no push when adopting remote")
	}
}
