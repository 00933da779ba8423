// Package app holds the journal operations shared by the CLI and the
// dashboard.
package app

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"time"

	"tableflip.dev/journal/pkg/entry"
	"tableflip.dev/journal/pkg/store"
	"tableflip.dev/journal/pkg/syncer"
)

var (
	ErrNoPersistence = errors.New("app: no persistence configured")
	ErrEmptyEntry    = errors.New("app: entry content is empty")
)

// Service wraps persistence and sync so UIs and CLIs share one mutation path.
// Syncer may be nil, in which case sync is disabled.
type Service struct {
	Persistence store.Persistence
	Syncer      *syncer.Coordinator
	Now         func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Entries returns the whole journal in stored order.
func (s *Service) Entries(_ context.Context) ([]entry.Entry, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.Load()
}

// Log appends content stamped with the current time and kicks off a
// background sync.
func (s *Service) Log(ctx context.Context, content string) (entry.Entry, error) {
	if s.Persistence == nil {
		return entry.Entry{}, ErrNoPersistence
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return entry.Entry{}, ErrEmptyEntry
	}
	e, err := s.Persistence.Append(content, s.now())
	if err != nil {
		return entry.Entry{}, err
	}
	s.pushInBackground(ctx)
	return e, nil
}

// RemoveByTimestamp deletes the entries carrying ts.
func (s *Service) RemoveByTimestamp(ctx context.Context, ts string) ([]entry.Entry, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	removed, err := s.Persistence.RemoveByTimestamp(ts)
	if err != nil {
		return nil, err
	}
	if len(removed) > 0 {
		s.pushInBackground(ctx)
	}
	return removed, nil
}

// RemoveDay deletes every entry logged on dateKey.
func (s *Service) RemoveDay(ctx context.Context, dateKey string) ([]entry.Entry, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	removed, err := s.Persistence.RemoveAllForDay(dateKey)
	if err != nil {
		return nil, err
	}
	if len(removed) > 0 {
		s.pushInBackground(ctx)
	}
	return removed, nil
}

// RemoveLast deletes the newest entry.
func (s *Service) RemoveLast(ctx context.Context) (entry.Entry, error) {
	if s.Persistence == nil {
		return entry.Entry{}, ErrNoPersistence
	}
	removed, err := s.Persistence.RemoveLast()
	if err != nil {
		return entry.Entry{}, err
	}
	s.pushInBackground(ctx)
	return removed, nil
}

func (s *Service) pushInBackground(_ context.Context) {
	if s.Syncer == nil || !s.Syncer.Configured() {
		return
	}
	all, err := s.Persistence.Load()
	if err != nil {
		return
	}
	s.Syncer.InBackground(all)
}

// Sync runs a blocking pull-merge-push and stores the merged journal locally.
func (s *Service) Sync(ctx context.Context) ([]entry.Entry, syncer.Status, error) {
	if s.Persistence == nil {
		return nil, syncer.StatusDisabled, ErrNoPersistence
	}
	local, err := s.Persistence.Load()
	if err != nil {
		return nil, syncer.StatusDisabled, err
	}
	if s.Syncer == nil {
		return local, syncer.StatusDisabled, nil
	}
	merged, status := s.Syncer.FullSync(ctx, local)
	if status == syncer.StatusMerged && !reflect.DeepEqual(merged, local) {
		if err := s.Persistence.Save(merged); err != nil {
			return local, status, err
		}
	}
	return merged, status, nil
}

// ListOptions select which days List returns.
type ListOptions struct {
	Order entry.Order
	Limit int
	Sync  bool
}

// Listing is a grouped view of the journal.
type Listing struct {
	Groups entry.Groups
	Days   []string
	Total  int
	Sync   syncer.Status
}

// Entries returns the entries of the listed days, in listing order.
func (l Listing) Entries() []entry.Entry {
	out := make([]entry.Entry, 0, l.Total)
	for _, day := range l.Days {
		out = append(out, l.Groups[day]...)
	}
	return out
}

// List groups the journal by day, optionally syncing first.
func (s *Service) List(ctx context.Context, opts ListOptions) (Listing, error) {
	var (
		all    []entry.Entry
		status = syncer.StatusDisabled
		err    error
	)
	if opts.Sync {
		all, status, err = s.Sync(ctx)
	} else {
		all, err = s.Entries(ctx)
	}
	if err != nil {
		return Listing{}, err
	}
	groups := entry.GroupByDate(all)
	return Listing{
		Groups: groups,
		Days:   groups.Days(opts.Order, opts.Limit),
		Total:  len(all),
		Sync:   status,
	}, nil
}

// SetupResult reports what Setup configured.
type SetupResult struct {
	Path    string
	Sync    store.SyncConfig
	Entries int
}

// Setup creates the journal if missing and, with a token, links it to a gist.
// An empty token leaves sync disabled.
func (s *Service) Setup(ctx context.Context, token string) (SetupResult, error) {
	if s.Persistence == nil {
		return SetupResult{}, ErrNoPersistence
	}
	if err := s.Persistence.Init(); err != nil {
		return SetupResult{}, err
	}
	local, err := s.Persistence.Load()
	if err != nil {
		return SetupResult{}, err
	}
	res := SetupResult{Path: s.Persistence.Path(), Entries: len(local)}

	token = strings.TrimSpace(token)
	if token == "" || s.Syncer == nil {
		return res, nil
	}
	result, cfg, err := s.Syncer.Initialize(ctx, token, local)
	if err != nil {
		return res, err
	}
	res.Sync = cfg
	res.Entries = len(result)
	if !reflect.DeepEqual(result, local) {
		if err := s.Persistence.Save(result); err != nil {
			return res, err
		}
	}
	return res, nil
}
