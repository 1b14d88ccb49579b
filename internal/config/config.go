// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for ptatools.
//
// Two layers of configuration exist:
//   - The tool config (~/.ptatools/config.toml) holds machine-level settings:
//     where the data directory lives, color handling, history database path,
//     watch debounce, and the default term.
//   - Per-job specs (YAML files inside the data directory) describe one run of
//     a command: the term, the input spreadsheets, and command-specific knobs.
//     See jobs.go.
//
// Configuration file locations (in order of precedence):
//   - path given with --config
//   - ~/.ptatools/config.toml
//   - Built-in defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete ptatools configuration.
type Config struct {
	// General settings
	Version string `toml:"version"`

	// Data directory and term defaults
	Data DataConfig `toml:"data"`

	// Run-history database
	History HistoryConfig `toml:"history"`

	// Watch-mode behavior
	Watch WatchConfig `toml:"watch"`

	// Terminal output
	UI UIConfig `toml:"ui"`
}

// DataConfig locates the working data and names the default term.
type DataConfig struct {
	// Dir is the data directory holding input spreadsheets, job specs, and
	// generated reports. Empty means the current working directory.
	Dir string `toml:"dir"`
	// Term is the default term stamp (e.g., "21b") used when a job spec
	// does not name one.
	Term string `toml:"term"`
}

// HistoryConfig contains run-history settings.
type HistoryConfig struct {
	// Enabled controls whether suite runs are recorded
	Enabled bool `toml:"enabled"`
	// Path is the history database file (empty = default ~/.ptatools/history.db)
	Path string `toml:"path"`
	// KeepRuns is how many runs `history` lists by default
	KeepRuns int `toml:"keep_runs"`
}

// WatchConfig contains watch-mode settings.
type WatchConfig struct {
	// DebounceMs is the quiet period after a file event before rebuilding.
	// Valid range is 50-5000 ms; values outside are clamped.
	DebounceMs int `toml:"debounce_ms"`
	// MaxPerMinute caps rebuilds per minute during editor save storms
	MaxPerMinute int `toml:"max_per_minute"`
}

// UIConfig contains terminal output settings.
type UIConfig struct {
	// Color is "auto", "always", or "never"
	Color string `toml:"color"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		Data: DataConfig{
			Dir:  "",
			Term: "",
		},

		History: HistoryConfig{
			Enabled:  true,
			Path:     "",
			KeepRuns: 20,
		},

		Watch: WatchConfig{
			DebounceMs:   300,
			MaxPerMinute: 10,
		},

		UI: UIConfig{
			Color: "auto",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the ptatools configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".ptatools"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// HistoryPath returns the configured history database path, falling back to
// ~/.ptatools/history.db when unset.
func (c *Config) HistoryPath() (string, error) {
	if c.History.Path != "" {
		return c.History.Path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}

// DataDir returns the configured data directory, falling back to the current
// working directory when unset.
func (c *Config) DataDir() string {
	if c.Data.Dir != "" {
		return c.Data.Dir
	}
	return "."
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the default config file.
// Falls back to defaults when no file exists. Environment overrides are
// applied last, then defaults are filled and the result validated.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadTOML(cfg, path); err != nil {
				return nil, fmt.Errorf("failed to load config %s: %w", path, err)
			}
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file into cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from a specific file path with full
// validation. Used by the --config flag.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
func SaveTOML(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	// Write header comment
	fmt.Fprintln(file, "# ptatools configuration file")
	fmt.Fprintln(file, "# Generated by ptatools - edit with care")
	fmt.Fprintln(file, "")

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	// Validate data dir if one is named
	if c.Data.Dir != "" {
		if info, err := os.Stat(c.Data.Dir); err == nil && !info.IsDir() {
			errs = append(errs, ValidationError{
				Field:   "data.dir",
				Message: fmt.Sprintf("'%s' is not a directory", c.Data.Dir),
			})
		}
	}

	// Validate color mode
	validColors := map[string]bool{"auto": true, "always": true, "never": true}
	if !validColors[strings.ToLower(c.UI.Color)] {
		errs = append(errs, ValidationError{
			Field:   "ui.color",
			Message: fmt.Sprintf("invalid mode '%s', must be one of: auto, always, never", c.UI.Color),
		})
	}

	// Validate keep_runs
	if c.History.KeepRuns < 0 {
		errs = append(errs, ValidationError{
			Field:   "history.keep_runs",
			Message: "must be non-negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults sets default values for any missing or zero-value configuration
// fields, clamping the watch settings into their valid ranges.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.History.KeepRuns == 0 {
		c.History.KeepRuns = defaults.History.KeepRuns
	}
	if c.UI.Color == "" {
		c.UI.Color = defaults.UI.Color
	}

	// Debounce is clamped rather than rejected: a misconfigured watcher should
	// still watch, just at a sane cadence.
	if c.Watch.DebounceMs == 0 {
		c.Watch.DebounceMs = defaults.Watch.DebounceMs
	}
	if c.Watch.DebounceMs < 50 {
		c.Watch.DebounceMs = 50
	}
	if c.Watch.DebounceMs > 5000 {
		c.Watch.DebounceMs = 5000
	}
	if c.Watch.MaxPerMinute <= 0 {
		c.Watch.MaxPerMinute = defaults.Watch.MaxPerMinute
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - PTATOOLS_DIR: overrides data.dir
//   - PTATOOLS_TERM: overrides data.term
//   - PTATOOLS_HISTORY_DB: overrides history.path
//   - PTATOOLS_NO_HISTORY: set to "1" or "true" to disable run recording
//   - PTATOOLS_COLOR: overrides ui.color (auto, always, never)
//   - PTATOOLS_DEBOUNCE_MS: overrides watch.debounce_ms
func (c *Config) ApplyEnvOverrides() {
	if dir := os.Getenv("PTATOOLS_DIR"); dir != "" {
		c.Data.Dir = dir
	}

	if term := os.Getenv("PTATOOLS_TERM"); term != "" {
		c.Data.Term = term
	}

	if db := os.Getenv("PTATOOLS_HISTORY_DB"); db != "" {
		c.History.Path = db
	}

	if noHist := os.Getenv("PTATOOLS_NO_HISTORY"); noHist != "" {
		if noHist == "1" || strings.ToLower(noHist) == "true" {
			c.History.Enabled = false
		}
	}

	if color := os.Getenv("PTATOOLS_COLOR"); color != "" {
		c.UI.Color = color
	}

	if ms := os.Getenv("PTATOOLS_DEBOUNCE_MS"); ms != "" {
		if n, err := strconv.Atoi(ms); err == nil {
			c.Watch.DebounceMs = n
		}
	}
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			// Fall back to defaults so the tools still run
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
			cfg.ApplyEnvOverrides()
			cfg.SetDefaults()
		}
		globalConfig = cfg
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
// This should only be used in tests to reset state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
