// Package config provides configuration management for the palette and
// vibrancy CLI binaries.
//
// Configuration is loaded from an optional JSON file at
// ~/.config/vibrant-go/config.json. Unlike the file this package is
// adapted from, nothing here is required: Load succeeds without a config
// file, filling in defaults for a missing file or missing fields. Command line flags
// passed to cmd/palette and cmd/vibrancy override whatever Load returns.
//
// Example config file:
//
//	{
//	  "colors": 64,
//	  "quality": 10,
//	  "log_level": "info",
//	  "log_file": ""
//	}
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds default CLI parameters for the palette and vibrancy
// commands.
//
// All fields are optional in the config file:
//   - Colors defaults to 64 if not specified
//   - Quality defaults to 10 if not specified
//   - LogLevel defaults to "info" if not specified
//   - LogFile defaults to empty if not specified
type Config struct {
	// Colors is the default requested palette size. It is checked against
	// the quantizer's color range by the quantizer itself, which returns
	// an error for an out-of-range value.
	Colors int `json:"colors"`

	// Quality is the default downscale quality factor. It is checked
	// against the quantizer's quality range by the quantizer itself, which
	// returns an error for an out-of-range value.
	Quality int `json:"quality"`

	// LogLevel is the logging verbosity level.
	// Valid values: "debug", "info", "warn", "error"
	// Defaults to "info" if not specified.
	LogLevel string `json:"log_level"`

	// LogFile is an optional log file path read from the config file.
	// cmd/palette and cmd/vibrancy do not use it: their logger writes to
	// a console sink only.
	LogFile string `json:"log_file"`
}

// Default configuration values, matching the constants vibrant-rs's
// primary.rs and vibrancy.rs example binaries hardcode.
const (
	// DefaultColors is the default requested palette size (64).
	DefaultColors = 64

	// DefaultQuality is the default downscale quality factor (10).
	DefaultQuality = 10

	// DefaultLogLevel is the default logging verbosity ("info").
	DefaultLogLevel = "info"
)

// Load loads configuration from the default config file at
// ~/.config/vibrant-go/config.json, if present, filling in defaults for
// anything unset or for a missing file entirely.
//
// Returns an error only if the config file exists but cannot be read or
// is malformed JSON, or if the resulting configuration fails Validate.
func Load() (*Config, error) {
	cfg := &Config{
		Colors:   DefaultColors,
		Quality:  DefaultQuality,
		LogLevel: DefaultLogLevel,
	}

	if err := cfg.loadFromFile(); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads configuration from the default config file location,
// overwriting whatever fields are present in the file.
func (c *Config) loadFromFile() error {
	data, err := os.ReadFile(getConfigFilePath())
	if err != nil {
		return err
	}
	return json.Unmarshal(data, c)
}

// setDefaults fills in any configuration fields left unset after loading
// the config file (or left unset because there was no config file).
func (c *Config) setDefaults() {
	if c.Colors == 0 {
		c.Colors = DefaultColors
	}
	if c.Quality == 0 {
		c.Quality = DefaultQuality
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate checks that the configured defaults are themselves sane.
//
// The Colors and Quality bounds are intentionally not enforced here --
// the quantizer itself validates and reports out-of-bounds requests, and
// CLI flags may legitimately override these defaults at the command
// line.
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", c.LogLevel)
	}
	return nil
}

// getConfigFilePath is a function variable that returns the default config
// file path. Can be overridden in tests.
var getConfigFilePath = func() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "vibrant-go", "config.json")
}
