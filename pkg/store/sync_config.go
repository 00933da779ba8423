package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SyncConfig holds the Gist credentials. A zero value means sync is disabled.
type SyncConfig struct {
	Token  string `json:"token"`
	GistID string `json:"gistId,omitempty"`
}

// Configured reports whether both a token and a gist id are present.
func (c SyncConfig) Configured() bool {
	return strings.TrimSpace(c.Token) != "" && strings.TrimSpace(c.GistID) != ""
}

func (p *persistence) LoadSyncConfig() (SyncConfig, error) {
	data, err := p.d.Read(syncConfigKey)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return SyncConfig{}, nil
		}
		return SyncConfig{}, fmt.Errorf("store: read sync config: %w", err)
	}
	cfg := SyncConfig{}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return SyncConfig{}, &ParseError{Path: filepath.Join(p.basePath, syncConfigKey), Err: err}
	}
	return cfg, nil
}

func (p *persistence) SaveSyncConfig(cfg SyncConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(p.basePath, tempDir), 0o700); err != nil {
		return fmt.Errorf("store: ensure temp dir: %w", err)
	}
	if err := p.d.Write(syncConfigKey, data); err != nil {
		return fmt.Errorf("store: write sync config: %w", err)
	}
	return nil
}
