// Package syncer keeps the local journal and its Gist mirror in step.
//
// A Coordinator is created once per process and owns the only sync state:
// whether a background push is in flight and when the last push succeeded.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"

	"tableflip.dev/journal/pkg/entry"
	"tableflip.dev/journal/pkg/store"
)

// DefaultDebounce is the quiet period after a successful push during which
// background syncs are skipped.
const DefaultDebounce = 5 * time.Second

// ErrNotConfigured marks sync as disabled. It is a state, not a failure.
var ErrNotConfigured = errors.New("syncer: sync not configured")

// errOffline marks a push skipped because the remote could not be reached.
var errOffline = errors.New("syncer: remote unreachable")

// Remote is the capability set of the remote document store.
type Remote interface {
	Create(ctx context.Context, entries []entry.Entry) (string, error)
	Fetch(ctx context.Context, id string) ([]entry.Entry, error)
	Update(ctx context.Context, id string, entries []entry.Entry) error
	Reachable(ctx context.Context) bool
}

// RemoteFactory builds a Remote authenticated with token.
type RemoteFactory func(token string) (Remote, error)

// ConfigStore persists the sync credentials.
type ConfigStore interface {
	LoadSyncConfig() (store.SyncConfig, error)
	SaveSyncConfig(cfg store.SyncConfig) error
}

// NotFoundFunc reports whether err means the configured gist no longer exists.
type NotFoundFunc func(err error) bool

// Status describes what a blocking sync did.
type Status int

const (
	StatusDisabled Status = iota
	StatusOffline
	StatusFailed
	StatusPushed
	StatusMerged
)

func (s Status) String() string {
	switch s {
	case StatusDisabled:
		return "disabled"
	case StatusOffline:
		return "offline"
	case StatusFailed:
		return "failed"
	case StatusPushed:
		return "pushed"
	case StatusMerged:
		return "merged"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Options tune a Coordinator. Zero values pick defaults.
type Options struct {
	Debounce time.Duration
	Logger   hclog.Logger
	Now      func() time.Time
	NotFound NotFoundFunc
}

// Coordinator runs background and full syncs.
type Coordinator struct {
	configs  ConfigStore
	remote   RemoteFactory
	log      hclog.Logger
	debounce time.Duration
	now      func() time.Time
	notFound NotFoundFunc

	mu         sync.Mutex
	inProgress bool
	lastSync   time.Time
	wg         sync.WaitGroup
}

// New returns a Coordinator reading credentials from configs.
func New(configs ConfigStore, remote RemoteFactory, opts Options) *Coordinator {
	c := &Coordinator{
		configs:  configs,
		remote:   remote,
		log:      opts.Logger,
		debounce: opts.Debounce,
		now:      opts.Now,
		notFound: opts.NotFound,
	}
	if c.log == nil {
		c.log = hclog.NewNullLogger()
	}
	if c.debounce <= 0 {
		c.debounce = DefaultDebounce
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.notFound == nil {
		c.notFound = func(error) bool { return false }
	}
	c.log = c.log.Named("sync")
	return c
}

// Configured reports whether sync credentials are present.
func (c *Coordinator) Configured() bool {
	if c == nil || c.configs == nil {
		return false
	}
	cfg, err := c.configs.LoadSyncConfig()
	return err == nil && cfg.Configured()
}

func (c *Coordinator) open() (Remote, store.SyncConfig, error) {
	if c == nil || c.configs == nil || c.remote == nil {
		return nil, store.SyncConfig{}, ErrNotConfigured
	}
	cfg, err := c.configs.LoadSyncConfig()
	if err != nil {
		return nil, store.SyncConfig{}, err
	}
	if !cfg.Configured() {
		return nil, cfg, ErrNotConfigured
	}
	r, err := c.remote(cfg.Token)
	if err != nil {
		return nil, cfg, err
	}
	return r, cfg, nil
}

func (c *Coordinator) markSynced() {
	c.mu.Lock()
	c.lastSync = c.now()
	c.mu.Unlock()
}

// LastSync is the time of the last successful push, zero if none.
func (c *Coordinator) LastSync() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastSync
}

// InBackground pushes a snapshot of entries without blocking the caller. The
// call is skipped when a push is already running or the last successful push
// is inside the debounce window. Failures are logged and never returned.
func (c *Coordinator) InBackground(entries []entry.Entry) {
	if c == nil {
		return
	}
	c.mu.Lock()
	if c.inProgress {
		c.mu.Unlock()
		c.log.Debug("background sync skipped", "reason", "in progress")
		return
	}
	if since := c.now().Sub(c.lastSync); !c.lastSync.IsZero() && since < c.debounce {
		c.mu.Unlock()
		c.log.Debug("background sync skipped", "reason", "debounce", "since", since)
		return
	}
	c.inProgress = true
	c.mu.Unlock()

	snapshot := entry.Clone(entries)
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer func() {
			c.mu.Lock()
			c.inProgress = false
			c.mu.Unlock()
		}()

		if err := c.push(context.Background(), snapshot); err != nil {
			if errors.Is(err, ErrNotConfigured) {
				c.log.Debug("background sync skipped", "reason", "not configured")
				return
			}
			if errors.Is(err, errOffline) {
				c.log.Debug("background sync skipped", "reason", "offline")
				return
			}
			c.log.Error("background sync failed", "error", err)
			return
		}
		c.markSynced()
		c.log.Debug("background sync complete", "entries", len(snapshot))
	}()
}

func (c *Coordinator) push(ctx context.Context, entries []entry.Entry) error {
	r, cfg, err := c.open()
	if err != nil {
		return err
	}
	if !r.Reachable(ctx) {
		return errOffline
	}
	return r.Update(ctx, cfg.GistID, entries)
}

// Drain waits up to timeout for an in-flight background push. It is meant for
// process shutdown only; it reports whether the push finished in time.
func (c *Coordinator) Drain(timeout time.Duration) bool {
	if c == nil {
		return true
	}
	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		c.log.Warn("background sync still running at exit", "timeout", timeout)
		return false
	}
}

// FullSync pulls the remote entries, union-merges them into local, pushes the
// result and returns it. When sync is disabled, offline or failing, local is
// returned unchanged and the failure is only logged.
func (c *Coordinator) FullSync(ctx context.Context, local []entry.Entry) ([]entry.Entry, Status) {
	if c == nil {
		return local, StatusDisabled
	}
	c.wg.Wait()

	r, cfg, err := c.open()
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			return local, StatusDisabled
		}
		c.log.Error("sync failed", "error", err)
		return local, StatusFailed
	}
	if !r.Reachable(ctx) {
		c.log.Debug("sync skipped", "reason", "offline")
		return local, StatusOffline
	}

	remote, err := r.Fetch(ctx, cfg.GistID)
	if err != nil {
		c.log.Error("sync fetch failed", "gist", cfg.GistID, "error", err)
		return local, StatusFailed
	}
	if len(remote) == 0 {
		if err := r.Update(ctx, cfg.GistID, local); err != nil {
			c.log.Error("sync push failed", "gist", cfg.GistID, "error", err)
			return local, StatusFailed
		}
		c.markSynced()
		return local, StatusPushed
	}

	merged := Merge(local, remote)
	if err := r.Update(ctx, cfg.GistID, merged); err != nil {
		c.log.Error("sync push failed", "gist", cfg.GistID, "error", err)
		return local, StatusFailed
	}
	c.markSynced()
	c.log.Debug("sync merged", "local", len(local), "remote", len(remote), "merged", len(merged))
	return merged, StatusMerged
}

// Initialize wires the journal to a gist for the first time (or again after a
// token change). Without a known gist id a new gist is created from local.
// With one, the two sides are reconciled:
//
//	local and remote non-empty: union-merge and push
//	only remote non-empty:      adopt remote, no push
//	only local non-empty:       push local
//	both empty:                 nothing besides saving the config
//
// The returned entries are what the local store should now hold.
func (c *Coordinator) Initialize(ctx context.Context, token string, local []entry.Entry) ([]entry.Entry, store.SyncConfig, error) {
	if c == nil || c.configs == nil || c.remote == nil {
		return local, store.SyncConfig{}, ErrNotConfigured
	}
	existing, err := c.configs.LoadSyncConfig()
	if err != nil {
		return local, store.SyncConfig{}, err
	}
	r, err := c.remote(token)
	if err != nil {
		return local, store.SyncConfig{}, err
	}
	cfg := store.SyncConfig{Token: token, GistID: existing.GistID}

	result := local
	var remote []entry.Entry
	if cfg.GistID != "" {
		remote, err = r.Fetch(ctx, cfg.GistID)
		if err != nil {
			if !c.notFound(err) {
				return local, cfg, err
			}
			c.log.Warn("configured gist not found, creating a new one", "gist", cfg.GistID)
			cfg.GistID = ""
		}
	}

	switch {
	case cfg.GistID == "":
		id, err := r.Create(ctx, local)
		if err != nil {
			return local, cfg, err
		}
		cfg.GistID = id
		c.markSynced()
	case len(local) > 0 && len(remote) > 0:
		result = Merge(local, remote)
		if err := r.Update(ctx, cfg.GistID, result); err != nil {
			return local, cfg, err
		}
		c.markSynced()
	case len(remote) > 0:
		result = entry.Clone(remote)
	case len(local) > 0:
		if err := r.Update(ctx, cfg.GistID, local); err != nil {
			return local, cfg, err
		}
		c.markSynced()
	}

	if err := c.configs.SaveSyncConfig(cfg); err != nil {
		return local, cfg, err
	}
	return result, cfg, nil
}

// Merge returns local plus every remote entry whose timestamp local lacks,
// newest first. Nothing present on either side is dropped; on equal
// timestamps the local copy wins.
func Merge(local, remote []entry.Entry) []entry.Entry {
	seen := make(map[string]struct{}, len(local))
	merged := make([]entry.Entry, 0, len(local)+len(remote))
	for _, e := range local {
		seen[e.Timestamp] = struct{}{}
		merged = append(merged, e)
	}
	for _, e := range remote {
		if _, ok := seen[e.Timestamp]; ok {
			continue
		}
		merged = append(merged, e)
	}
	entry.SortDescending(merged)
	return merged
}
