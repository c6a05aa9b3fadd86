// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Backend selects the persistence variant.
const (
	BackendLocal  = "local"
	BackendRemote = "remote"
)

// Config represents the application configuration.
type Config struct {
	Backend      string       `toml:"backend"`       // "local" or "remote"
	DataDir      string       `toml:"data_dir"`      // Snapshot directory for the local backend
	LatencyScale float64      `toml:"latency_scale"` // Multiplier for simulated latency; 0 disables
	Remote       RemoteConfig `toml:"remote"`
	Log          LogConfig    `toml:"log"`
}

// RemoteConfig holds record-service settings from the [remote] section.
type RemoteConfig struct {
	BaseURL   string `toml:"base_url"`
	APIKey    string `toml:"api_key"`
	ProjectID string `toml:"project_id"`
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// NewDefault returns the configuration used when no file exists.
func NewDefault() *Config {
	return &Config{
		Backend:      BackendLocal,
		DataDir:      defaultDataDir(),
		LatencyScale: 1.0,
		Log:          LogConfig{Level: "info"},
	}
}

// Loader loads configuration from a TOML file.
type Loader struct {
	path string
}

// NewLoader creates a Loader reading from the default config path.
// TASKFLOW_CONFIG overrides the location.
func NewLoader() *Loader {
	if path := os.Getenv("TASKFLOW_CONFIG"); path != "" {
		return &Loader{path: path}
	}
	return &Loader{path: filepath.Join(defaultConfigDir(), "config.toml")}
}

// NewLoaderWithPath creates a Loader for a specific file. This is
// useful for testing.
func NewLoaderWithPath(path string) *Loader {
	return &Loader{path: path}
}

// Load returns the file configuration merged over the defaults.
// A missing file yields the defaults; a malformed file is an error.
func (l *Loader) Load() (*Config, error) {
	cfg := NewDefault()

	content, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return l.applyEnv(cfg), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Backend != BackendLocal && cfg.Backend != BackendRemote {
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
	if cfg.LatencyScale < 0 {
		return nil, fmt.Errorf("latency_scale must not be negative")
	}
	return l.applyEnv(cfg), nil
}

// applyEnv layers environment overrides on top of the file values.
func (l *Loader) applyEnv(cfg *Config) *Config {
	if dir := os.Getenv("TASKFLOW_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}
	return cfg
}

func defaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "taskflow")
}

func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "taskflow")
}
