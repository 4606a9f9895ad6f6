// Package config loads deskcalc settings from an optional YAML file and
// DESKCALC_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/deskcalc"
	"github.com/zephyrtronium/deskcalc/internal/logging"
)

// Config is the complete configuration.
type Config struct {
	History HistoryConfig `yaml:"history" mapstructure:"history"`
	Display DisplayConfig `yaml:"display" mapstructure:"display"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
	Theme   ThemeConfig   `yaml:"theme" mapstructure:"theme"`
}

// HistoryConfig is the history section.
type HistoryConfig struct {
	// Recent is the number of entries in the recent-history panel.
	Recent int `yaml:"recent" mapstructure:"recent"`
}

// DisplayConfig is the display section.
type DisplayConfig struct {
	// Format is auto, fixed or exponent.
	Format string `yaml:"format" mapstructure:"format"`
}

// LogConfig is the log section.
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
	// File, if set, sends JSON logs to a file instead of text to stderr.
	File string `yaml:"file" mapstructure:"file"`
}

// ThemeConfig is the theme section, used by the TUI and the REPL.
type ThemeConfig struct {
	// Accent and Error are lipgloss colors: ANSI numbers or hex strings.
	Accent string `yaml:"accent" mapstructure:"accent"`
	Error  string `yaml:"error" mapstructure:"error"`
}

// MaxRecent bounds History.Recent.
const MaxRecent = 100

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		History: HistoryConfig{Recent: 5},
		Display: DisplayConfig{Format: deskcalc.FormatAuto.String()},
		Log:     LogConfig{Level: "info"},
		Theme:   ThemeConfig{Accent: "63", Error: "203"},
	}
}

// DefaultPath returns the config file used when none is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "deskcalc", "config.yaml")
}

// envKeys maps environment variables to config keys.
var envKeys = map[string][2]string{
	"DESKCALC_HISTORY_RECENT": {"history", "recent"},
	"DESKCALC_DISPLAY_FORMAT": {"display", "format"},
	"DESKCALC_LOG_LEVEL":      {"log", "level"},
	"DESKCALC_LOG_FILE":       {"log", "file"},
}

// Load reads the file at path over the defaults, then applies environment
// overrides looked up with getenv. A missing file is not an error when
// optional is true. The result is validated.
func Load(path string, optional bool, getenv func(string) (string, bool)) (Config, error) {
	raw := map[string]any{}
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, &raw); err != nil {
				return Config{}, &Error{Op: "config.parse", Path: path, Err: err}
			}
			if raw == nil {
				// An empty document unmarshals to a nil map.
				raw = map[string]any{}
			}
		case optional && errors.Is(err, fs.ErrNotExist):
			// Use defaults.
		default:
			return Config{}, &Error{Op: "config.read", Path: path, Err: err}
		}
	}
	if getenv != nil {
		overlayEnv(raw, getenv)
	}

	cfg := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Config{}, &Error{Op: "config.decode", Path: path, Err: err}
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, &Error{Op: "config.decode", Path: path, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, &Error{Op: "config.validate", Path: path, Err: err}
	}
	return cfg, nil
}

func overlayEnv(raw map[string]any, getenv func(string) (string, bool)) {
	for env, key := range envKeys {
		v, ok := getenv(env)
		if !ok {
			continue
		}
		section, _ := raw[key[0]].(map[string]any)
		if section == nil {
			section = map[string]any{}
			raw[key[0]] = section
		}
		section[key[1]] = v
	}
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	var errs []error
	if c.History.Recent < 0 || c.History.Recent > MaxRecent {
		errs = append(errs, fmt.Errorf("history.recent must be between 0 and %d, not %d", MaxRecent, c.History.Recent))
	}
	if _, err := deskcalc.ParseFormat(c.Display.Format); err != nil {
		errs = append(errs, fmt.Errorf("display.format: %w", err))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if strings.TrimSpace(c.Theme.Accent) == "" || strings.TrimSpace(c.Theme.Error) == "" {
		errs = append(errs, errors.New("theme colors must not be empty"))
	}
	return errors.Join(errs...)
}

// Format returns the configured result format. It assumes c is valid.
func (c Config) Format() deskcalc.Format {
	f, _ := deskcalc.ParseFormat(c.Display.Format)
	return f
}

// Level returns the configured log level. It assumes c is valid.
func (c Config) Level() slog.Level {
	l, _ := logging.ParseLevel(c.Log.Level)
	return l
}

// Error wraps a configuration failure with the operation and file.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := e.Op
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += ": " + e.Err.Error()
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
