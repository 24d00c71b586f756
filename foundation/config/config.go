// File: config.go
// Title: Logging Configuration Implementation
// Description: Implements the Config type and the loaders for TOML and
//              YAML configuration files with defaults and validation.
// Author: voyager-mc
// Version: v0.1.0
// Created: 2026-08-24
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-24 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config is the root of the Voyager configuration file.
type Config struct {
	Log LogConfig `toml:"log" yaml:"log"`
}

// LogConfig holds the logging facility's knobs.
type LogConfig struct {
	// Dir is the log directory, created on root configuration.
	Dir string `toml:"dir" yaml:"dir"`

	// Level is the root level name; the environment still wins
	// (VOYAGER_LOG_LEVEL, then LOG_LEVEL). Unrecognized names resolve
	// to INFO per the facility's fail-closed contract.
	Level string `toml:"level" yaml:"level"`

	// MaxBytes is the active-file size limit before rotation.
	MaxBytes int64 `toml:"max_bytes" yaml:"max_bytes"`

	// BackupCount is the number of retained numbered backups.
	BackupCount int `toml:"backup_count" yaml:"backup_count"`

	// Components maps namespaces to explicit level names.
	Components map[string]string `toml:"components" yaml:"components"`
}

// Default returns the built-in configuration: the original defaults of
// the facility (logs/, INFO, 10 MiB, 5 backups).
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Dir:         "logs",
			Level:       "info",
			MaxBytes:    10 * 1024 * 1024,
			BackupCount: 5,
		},
	}
}

// Load reads and validates the configuration file at path. The format is
// detected from the extension: .toml, .yaml, or .yml. Values absent from
// the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("parse config %q: %w", path, err)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %q: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (want .toml, .yaml, or .yml)", filepath.Ext(path))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault behaves like Load but returns the defaults when path is
// empty or the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Validate rejects configurations the facility cannot honor. Level names
// are deliberately not validated here: an unrecognized level resolves to
// INFO with a warning at resolution time, never a configuration error.
func (c *Config) Validate() error {
	if c.Log.MaxBytes < 0 {
		return fmt.Errorf("log.max_bytes must not be negative (got %d)", c.Log.MaxBytes)
	}
	if c.Log.BackupCount < 0 {
		return fmt.Errorf("log.backup_count must not be negative (got %d)", c.Log.BackupCount)
	}
	return nil
}
