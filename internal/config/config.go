// Package config loads lenz settings from an optional YAML file and the
// environment.
//
// Precedence, lowest first:
//  1. Hardcoded defaults (NewConfig)
//  2. The config file (see app.Paths.ConfigFile for the lookup order)
//  3. Environment variables (LENZ_*)
//  4. Command-line flags, applied by the caller
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/corey/lenz/internal/adapters/palette"
	"github.com/corey/lenz/internal/domain/cell"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the full set of user settings.
type Config struct {
	Color   string              `yaml:"color"`
	Layout  Layout              `yaml:"layout"`
	Palette map[string][]string `yaml:"palette,omitempty"`
	Log     LogConfig           `yaml:"log"`
}

// Layout positions line numbers and content in a rendered line.
type Layout struct {
	Indent      int `yaml:"indent"`
	NumberWidth int `yaml:"number_width"`
}

// LogConfig controls the debug log file.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"` // empty = default state path
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// NewConfig returns the defaults.
func NewConfig() *Config {
	l := cell.DefaultLayout()
	return &Config{
		Color: ColorAuto,
		Layout: Layout{
			Indent:      l.Indent,
			NumberWidth: l.NumberWidth,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Load builds the configuration from defaults, the file at path and the
// environment. An empty path skips the file. A missing file is an error only
// when required is set.
func Load(path string, required bool) (*Config, error) {
	cfg := NewConfig()

	if path != "" {
		// A missing default file is fine.
		if err := cfg.loadYAML(path); err != nil && (required || !errors.Is(err, fs.ErrNotExist)) {
			return nil, err
		}
	}

	cfg.applyEnvOverrides()
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadYAML decodes path over the current values. Keys missing from the file
// keep their current value; unknown keys are rejected.
func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("LENZ_COLOR"); v != "" {
		c.Color = v
	}
	if v := os.Getenv("LENZ_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// SetColor replaces the color mode, as the --color flag does, and validates
// the result.
func (c *Config) SetColor(mode string) error {
	c.Color = mode
	c.normalize()
	return c.Validate()
}

// normalize lower-cases the enumerated settings so later comparisons can be exact.
func (c *Config) normalize() {
	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
}

// Validate checks every field.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be 'auto', 'always' or 'never', got %s", c.Color)
	}

	if c.Layout.Indent < 0 {
		return fmt.Errorf("layout.indent must be non-negative, got %d", c.Layout.Indent)
	}
	if c.Layout.NumberWidth < 0 {
		return fmt.Errorf("layout.number_width must be non-negative, got %d", c.Layout.NumberWidth)
	}

	if _, err := palette.New(c.Palette); err != nil {
		return err
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("log.level must be 'debug', 'info', 'warn', or 'error', got %s", c.Log.Level)
	}
	if c.Log.MaxSizeMB < 0 {
		return fmt.Errorf("log.max_size_mb must be non-negative, got %d", c.Log.MaxSizeMB)
	}
	if c.Log.MaxBackups < 0 {
		return fmt.Errorf("log.max_backups must be non-negative, got %d", c.Log.MaxBackups)
	}
	return nil
}

// CellLayout converts the layout section for the renderer.
func (c *Config) CellLayout() cell.Layout {
	return cell.Layout{Indent: c.Layout.Indent, NumberWidth: c.Layout.NumberWidth}
}
