// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/slotcheck/internal/event"
)

// Storage backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config holds the application configuration.
type Config struct {
	Schedule ScheduleConfig `toml:"schedule"`
	Detect   DetectConfig   `toml:"detect"`
	Storage  StorageConfig  `toml:"storage"`
	UI       UIConfig       `toml:"ui"`
	Log      LogConfig      `toml:"log"`
}

// ScheduleConfig holds the working-hours window used for suggestions.
type ScheduleConfig struct {
	DayStart string `toml:"day_start"` // e.g., "08:00"
	DayEnd   string `toml:"day_end"`   // e.g., "18:00"
}

// DetectConfig selects the conflict detection algorithm.
type DetectConfig struct {
	Mode string `toml:"mode"` // "adjacent" or "sweep"
}

// StorageConfig selects where the session keeps its events.
// Both backends live in memory for the lifetime of the process.
type StorageConfig struct {
	Backend string `toml:"backend"` // "memory" or "sqlite"
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "macchiato", "frappe", "latte", "light"
}

// LogConfig holds debug logging settings.
type LogConfig struct {
	Level string `toml:"level"` // "debug", "info", "warn", "error"
	Path  string `toml:"path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Schedule: ScheduleConfig{
			DayStart: "08:00",
			DayEnd:   "18:00",
		},
		Detect: DetectConfig{
			Mode: "adjacent",
		},
		Storage: StorageConfig{
			Backend: BackendMemory,
		},
		UI: UIConfig{
			Theme: "frappe",
		},
		Log: LogConfig{
			Level: "debug",
			Path:  "slotcheck-debug.log",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "slotcheck", "config.toml")
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Log.Path = expandPath(cfg.Log.Path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SLOTCHECK_DAY_START"); v != "" {
		cfg.Schedule.DayStart = v
	}
	if v := os.Getenv("SLOTCHECK_DAY_END"); v != "" {
		cfg.Schedule.DayEnd = v
	}
	if v := os.Getenv("SLOTCHECK_MODE"); v != "" {
		cfg.Detect.Mode = v
	}
	if v := os.Getenv("SLOTCHECK_STORAGE"); v != "" {
		cfg.Storage.Backend = v
	}
	if v := os.Getenv("SLOTCHECK_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("SLOTCHECK_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("SLOTCHECK_LOG_PATH"); v != "" {
		cfg.Log.Path = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	start, err := parseTime(c.Schedule.DayStart, "day_start")
	if err != nil {
		return err
	}
	end, err := parseTime(c.Schedule.DayEnd, "day_end")
	if err != nil {
		return err
	}
	if start >= end {
		return errors.New("day_start must be before day_end")
	}

	switch strings.ToLower(c.Detect.Mode) {
	case "adjacent", "sweep":
	default:
		return fmt.Errorf("invalid detect mode: %s", c.Detect.Mode)
	}

	switch strings.ToLower(c.Storage.Backend) {
	case BackendMemory, BackendSQLite:
	default:
		return fmt.Errorf("invalid storage backend: %s", c.Storage.Backend)
	}

	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}
	if c.Log.Path == "" {
		return errors.New("log path must be set")
	}
	return nil
}

func parseTime(t, field string) (event.Clock, error) {
	c, err := event.ParseClock(t)
	if err != nil {
		return 0, fmt.Errorf("%s must be in HH:MM format, got %q: %w", field, t, err)
	}
	return c, nil
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
