package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	defaultBasePath     = "~/.journal"
	defaultSyncEndpoint = "https://api.github.com/"
	configName          = "config"
	configType          = "yaml"
)

// Config exposes the application settings read from config.yaml and the
// JOURNAL_* environment.
type Config interface {
	BasePath() string
	Debug() bool
	SyncDebounce() time.Duration
	SyncTimeout() time.Duration
	SyncEndpoint() string
}

// WritableConfig is a Config that can persist the debug toggle.
type WritableConfig interface {
	Config
	ConfigFile() string
	SetDebug(enabled bool) error
}

// LoadConfig reads config.yaml from $JOURNAL_CONFIG_PATH or ~/.journal, with
// JOURNAL_* environment variables taking precedence.
func LoadConfig() (WritableConfig, error) {
	v := viper.New()
	v.SetDefault("path", defaultBasePath)
	v.SetDefault("debug", false)
	v.SetDefault("sync.debounce", 5*time.Second)
	v.SetDefault("sync.timeout", 3*time.Second)
	v.SetDefault("sync.endpoint", defaultSyncEndpoint)
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.SetEnvPrefix("JOURNAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	dir := os.Getenv("JOURNAL_CONFIG_PATH")
	if dir == "" {
		var err error
		dir, err = homedir.Expand(defaultBasePath)
		if err != nil {
			return nil, err
		}
	}
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	base, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{v: v, dir: dir, path: base}, nil
}

type fileConfig struct {
	v    *viper.Viper
	dir  string
	path string
}

func (f *fileConfig) BasePath() string {
	return f.path
}

func (f *fileConfig) Debug() bool {
	return f.v.GetBool("debug")
}

func (f *fileConfig) SyncDebounce() time.Duration {
	return f.v.GetDuration("sync.debounce")
}

func (f *fileConfig) SyncTimeout() time.Duration {
	return f.v.GetDuration("sync.timeout")
}

func (f *fileConfig) SyncEndpoint() string {
	return f.v.GetString("sync.endpoint")
}

// ConfigFile is the file that was read, or where SetDebug will write.
func (f *fileConfig) ConfigFile() string {
	if used := f.v.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(f.dir, configName+"."+configType)
}

func (f *fileConfig) SetDebug(enabled bool) error {
	if f.dir == "" {
		return errors.New("store: config directory unknown")
	}
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return err
	}
	f.v.Set("debug", enabled)
	return f.v.WriteConfigAs(f.ConfigFile())
}
