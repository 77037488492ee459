// Package config loads wbs settings from defaults, an optional TOML file
// and WBS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/alexanderramin/wbs/internal/importer"
)

const (
	DefaultFile       = "Gantt Chart - KLIA (26 Mar 2025)(Project schedule).csv"
	DefaultTitle      = "WBS Progress Tracker - KLIA District Cooling System"
	DefaultConfigFile = "wbs.toml"
)

// Config holds everything the wbs binary needs at startup.
type Config struct {
	File   string          `toml:"file"`
	Title  string          `toml:"title"`
	Format importer.Format `toml:"format"`
	Log    LogConfig       `toml:"log"`
}

// LogConfig controls the use-case log. An empty File disables logging,
// since the terminal belongs to the UI.
type LogConfig struct {
	File   string `toml:"file"`
	Level  string `toml:"level"`
	Format string `toml:"format"` // text, json or logfmt
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		File:   DefaultFile,
		Title:  DefaultTitle,
		Format: importer.DefaultFormat(),
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds a Config in priority order:
//  1. Defaults
//  2. TOML file: path, else WBS_CONFIG, else ./wbs.toml when present
//  3. Environment variables
//
// CLI flags are layered on top by the caller.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("WBS_CONFIG")
	}
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := loadFromEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the format profile, the log settings and the file.
func (c *Config) Validate() error {
	errs := importer.ValidateFormat(c.Format)
	switch c.Log.Format {
	case "", "text", "json", "logfmt":
	default:
		errs = append(errs, fmt.Errorf("log format %q must be text, json or logfmt", c.Log.Format))
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("log level %q must be debug, info, warn or error", c.Log.Level))
	}
	if c.File == "" {
		errs = append(errs, fmt.Errorf("no wbs file given"))
	}
	return errors.Join(errs...)
}

func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("WBS_FILE"); v != "" {
		cfg.File = v
	}
	if v := os.Getenv("WBS_TITLE"); v != "" {
		cfg.Title = v
	}
	if v := os.Getenv("WBS_PHASE_PREFIX"); v != "" {
		cfg.Format.PhasePrefix = v
	}
	ints := []struct {
		key string
		dst *int
	}{
		{"WBS_SKIP_ROWS", &cfg.Format.SkipRows},
		{"WBS_MARKER_COL", &cfg.Format.MarkerColumn},
		{"WBS_NAME_COL", &cfg.Format.NameColumn},
	}
	for _, e := range ints {
		v := os.Getenv(e.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %q is not a number", e.key, v)
		}
		*e.dst = n
	}
	if v := os.Getenv("WBS_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("WBS_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("WBS_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	return nil
}
