package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/journal/pkg/entry"
)

const (
	entriesKey    = "entries.json"
	syncConfigKey = "sync.json"
	tempDir       = ".tmp"
)

// ErrNoEntries is returned when removing from an empty journal.
var ErrNoEntries = errors.New("store: no entries")

// ParseError reports a storage document that is not a JSON entry array.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("store: parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Persistence is the whole-document journal store. Every mutation reads the
// document, transforms it in memory and writes it back in full.
type Persistence interface {
	Init() error
	Path() string
	Load() ([]entry.Entry, error)
	Save(entries []entry.Entry) error
	Append(content string, at time.Time) (entry.Entry, error)
	RemoveByTimestamp(ts string) ([]entry.Entry, error)
	RemoveAllForDay(dateKey string) ([]entry.Entry, error)
	RemoveLast() (entry.Entry, error)
	LoadSyncConfig() (SyncConfig, error)
	SaveSyncConfig(cfg SyncConfig) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		TempDir:           filepath.Join(basePath, tempDir),
		PathPerm:          0o700,
		FilePerm:          0o600,
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Path() string {
	return filepath.Join(p.basePath, entriesKey)
}

func (p *persistence) Init() error {
	if err := os.MkdirAll(p.basePath, 0o700); err != nil {
		return fmt.Errorf("store: ensure base path: %w", err)
	}
	if p.d.Has(entriesKey) {
		_, err := p.Load()
		return err
	}
	return p.Save(nil)
}

func (p *persistence) Load() ([]entry.Entry, error) {
	data, err := p.d.Read(entriesKey)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []entry.Entry{}, nil
		}
		return nil, fmt.Errorf("store: read %s: %w", p.Path(), err)
	}
	return decodeEntries(p.Path(), data)
}

func (p *persistence) Save(entries []entry.Entry) error {
	data, err := encodeEntries(entries)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(p.basePath, tempDir), 0o700); err != nil {
		return fmt.Errorf("store: ensure temp dir: %w", err)
	}
	if err := p.d.Write(entriesKey, data); err != nil {
		return fmt.Errorf("store: write %s: %w", p.Path(), err)
	}
	return nil
}

func (p *persistence) Append(content string, at time.Time) (entry.Entry, error) {
	all, err := p.Load()
	if err != nil {
		return entry.Entry{}, err
	}
	e := entry.New(content, at)
	if err := p.Save(append(all, e)); err != nil {
		return entry.Entry{}, err
	}
	return e, nil
}

func (p *persistence) RemoveByTimestamp(ts string) ([]entry.Entry, error) {
	return p.removeWhere(func(e entry.Entry) bool {
		return e.Timestamp == ts
	})
}

func (p *persistence) RemoveAllForDay(dateKey string) ([]entry.Entry, error) {
	return p.removeWhere(func(e entry.Entry) bool {
		return entry.DateKey(e) == dateKey
	})
}

func (p *persistence) RemoveLast() (entry.Entry, error) {
	all, err := p.Load()
	if err != nil {
		return entry.Entry{}, err
	}
	idx := entry.Latest(all)
	if idx < 0 {
		return entry.Entry{}, ErrNoEntries
	}
	removed := all[idx]
	kept := append(all[:idx:idx], all[idx+1:]...)
	if err := p.Save(kept); err != nil {
		return entry.Entry{}, err
	}
	return removed, nil
}

func (p *persistence) removeWhere(match func(entry.Entry) bool) ([]entry.Entry, error) {
	all, err := p.Load()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, ErrNoEntries
	}
	kept := make([]entry.Entry, 0, len(all))
	removed := make([]entry.Entry, 0)
	for _, e := range all {
		if match(e) {
			removed = append(removed, e)
			continue
		}
		kept = append(kept, e)
	}
	if len(removed) == 0 {
		return removed, nil
	}
	if err := p.Save(kept); err != nil {
		return nil, err
	}
	return removed, nil
}

func decodeEntries(path string, data []byte) ([]entry.Entry, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return []entry.Entry{}, nil
	}
	var all []entry.Entry
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if all == nil {
		all = []entry.Entry{}
	}
	return all, nil
}

func encodeEntries(entries []entry.Entry) ([]byte, error) {
	if entries == nil {
		entries = []entry.Entry{}
	}
	return json.MarshalIndent(entries, "", "  ")
}

// Every key is a file directly under the base path.
func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
