package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "GH_CONTEXT_CONFIG"

// Defaults used when a key is absent.
const (
	DefaultFormat      = "md"
	DefaultGHPath      = "gh"
	DefaultTimeout     = 2 * time.Minute
	DefaultState       = "open"
	DefaultPerPage     = 30
	DefaultPages       = 1
	DefaultConcurrency = 1
	MaxConcurrency     = 16
)

// BulkConfig holds defaults for the bulk flag group.
type BulkConfig struct {
	State   string `toml:"state"`
	PerPage int    `toml:"per_page"`
	Pages   int    `toml:"pages"`
}

// BatchConfig controls bulk and range execution.
type BatchConfig struct {
	Concurrency int `toml:"concurrency"`
}

// ThemeConfig selects the colors of status lines.
type ThemeConfig struct {
	Name     string `toml:"name"`
	Nerdfont bool   `toml:"nerdfont"`
}

// Config holds the gh-context configuration
type Config struct {
	Format  string        `toml:"format"`
	GHPath  string        `toml:"gh_path"`
	Timeout time.Duration `toml:"-"`
	Bulk    BulkConfig    `toml:"bulk"`
	Batch   BatchConfig   `toml:"batch"`
	Theme   ThemeConfig   `toml:"theme"`
}

// rawConfig is the on-disk shape; timeout is a Go duration string.
type rawConfig struct {
	Format  string      `toml:"format"`
	GHPath  string      `toml:"gh_path"`
	Timeout string      `toml:"timeout"`
	Bulk    BulkConfig  `toml:"bulk"`
	Batch   BatchConfig `toml:"batch"`
	Theme   ThemeConfig `toml:"theme"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Format:  DefaultFormat,
		GHPath:  DefaultGHPath,
		Timeout: DefaultTimeout,
		Bulk: BulkConfig{
			State:   DefaultState,
			PerPage: DefaultPerPage,
			Pages:   DefaultPages,
		},
		Batch: BatchConfig{Concurrency: DefaultConcurrency},
		Theme: ThemeConfig{Name: "default"},
	}
}

// Path returns the config file path: $GH_CONTEXT_CONFIG if set, otherwise
// ~/.config/gh-context/config.toml.
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "gh-context", "config.toml"), nil
}

// Load reads the config file at Path.
// Returns Default() if the file doesn't exist (no error).
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates the config file at path. A missing file
// yields Default() without error; an invalid file yields Default() and
// the error.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	var raw rawConfig
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg := Default()
	if raw.Format != "" {
		cfg.Format = raw.Format
	}
	if raw.GHPath != "" {
		cfg.GHPath = raw.GHPath
	}
	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return Default(), fmt.Errorf("invalid timeout %q: %w", raw.Timeout, err)
		}
		cfg.Timeout = d
	}
	if raw.Bulk.State != "" {
		cfg.Bulk.State = raw.Bulk.State
	}
	if raw.Bulk.PerPage != 0 {
		cfg.Bulk.PerPage = raw.Bulk.PerPage
	}
	if raw.Bulk.Pages != 0 {
		cfg.Bulk.Pages = raw.Bulk.Pages
	}
	if raw.Batch.Concurrency != 0 {
		cfg.Batch.Concurrency = raw.Batch.Concurrency
	}
	if raw.Theme.Name != "" {
		cfg.Theme.Name = raw.Theme.Name
	}
	cfg.Theme.Nerdfont = raw.Theme.Nerdfont

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
