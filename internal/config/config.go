// Package config loads addchain settings from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by Validate for every rejected setting.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds all addchain configuration.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Batch   BatchConfig   `yaml:"batch"`
	Cache   CacheConfig   `yaml:"cache"`
	Logging LoggingConfig `yaml:"logging"`
}

// SearchConfig configures single searches.
type SearchConfig struct {
	// Timeout is a Go duration string; "0" or empty disables the limit.
	Timeout string `yaml:"timeout"`
}

// BatchConfig configures the batch worker pool.
type BatchConfig struct {
	Workers int `yaml:"workers"`
}

// CacheConfig configures the SQLite result cache.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			Timeout: "0",
		},
		Batch: BatchConfig{
			Workers: 4,
		},
		Cache: CacheConfig{
			Enabled: true,
			Path:    defaultCachePath(),
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// DefaultPath returns the config file location under the user config dir.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".addchain", "config.yaml")
	}

	return filepath.Join(dir, "addchain", "config.yaml")
}

func defaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}

	return filepath.Join(dir, "addchain", "cache.db")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case os.IsNotExist(err):
		// defaults
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes the configuration to a YAML file, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies ADDCHAIN_* environment variables.
// Unparseable numeric values are ignored; Validate reports the rest.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("ADDCHAIN_TIMEOUT"); v != "" {
		c.Search.Timeout = v
	}
	if v := os.Getenv("ADDCHAIN_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Batch.Workers = n
		}
	}
	if v := os.Getenv("ADDCHAIN_CACHE_PATH"); v != "" {
		c.Cache.Path = v
	}
	if v := os.Getenv("ADDCHAIN_CACHE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Cache.Enabled = b
		}
	}
	if v := os.Getenv("ADDCHAIN_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
}

// GetTimeout returns the search timeout; zero means unlimited.
// Invalid values fall back to zero (Validate rejects them up front).
func (c *Config) GetTimeout() time.Duration {
	if c.Search.Timeout == "" || c.Search.Timeout == "0" {
		return 0
	}
	d, err := time.ParseDuration(c.Search.Timeout)
	if err != nil || d < 0 {
		return 0
	}

	return d
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if c.Search.Timeout != "" && c.Search.Timeout != "0" {
		d, err := time.ParseDuration(c.Search.Timeout)
		if err != nil {
			return fmt.Errorf("%w: search.timeout %q: %v", ErrInvalid, c.Search.Timeout, err)
		}
		if d < 0 {
			return fmt.Errorf("%w: search.timeout %q is negative", ErrInvalid, c.Search.Timeout)
		}
	}
	if c.Batch.Workers < 1 {
		return fmt.Errorf("%w: batch.workers must be at least 1, got %d", ErrInvalid, c.Batch.Workers)
	}
	if c.Cache.Enabled && c.Cache.Path == "" {
		return fmt.Errorf("%w: cache.path is empty", ErrInvalid)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Logging.Level)
	}

	return nil
}
