// Package config provides YAML-based configuration loading for the checkers front end.
package config

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-checkers/internal/core"
)

// Terminal drivers.
const (
	DriverTcell = "tcell"
	DriverTea   = "tea"
)

// Config is the full application configuration.
type Config struct {
	Driver       string        `yaml:"driver" env:"CHECKERS_DRIVER"`
	Variant      string        `yaml:"variant" env:"CHECKERS_VARIANT"`
	PollInterval time.Duration `yaml:"poll_interval" env:"CHECKERS_POLL_INTERVAL"`
	Log          LogConfig     `yaml:"log"`
	Storage      StorageConfig `yaml:"storage"`
	Palette      PaletteConfig `yaml:"palette"`
	Glyphs       GlyphConfig   `yaml:"glyphs"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `yaml:"level" env:"CHECKERS_LOG_LEVEL"`
	File  string `yaml:"file" env:"CHECKERS_LOG_FILE"` // Empty means the XDG state dir
}

// StorageConfig controls the move journal.
type StorageConfig struct {
	Enabled bool   `yaml:"enabled" env:"CHECKERS_STORAGE_ENABLED"`
	Path    string `yaml:"path" env:"CHECKERS_DB"` // Empty means the XDG data dir
}

// PaletteConfig names the background color of each board role.
type PaletteConfig struct {
	Empty     string `yaml:"empty"`
	Player    string `yaml:"player"`
	Computer  string `yaml:"computer"`
	Selected  string `yaml:"selected"`
	Candidate string `yaml:"candidate"`
}

// GlyphConfig holds single-character glyphs.
type GlyphConfig struct {
	Piece     string `yaml:"piece"`
	Empty     string `yaml:"empty"`
	Candidate string `yaml:"candidate"`
}

// InvalidConfigError reports a setting that failed validation.
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Driver:       DriverTcell,
		Variant:      "checkers",
		PollInterval: 500 * time.Millisecond,
		Log: LogConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			Enabled: true,
		},
		Palette: PaletteConfig{
			Empty:     "gray",
			Player:    "blue",
			Computer:  "red",
			Selected:  "yellow",
			Candidate: "green",
		},
		Glyphs: GlyphConfig{
			Piece:     " ",
			Empty:     " ",
			Candidate: " ",
		},
	}
}

// Validate checks every setting that can be checked without the registry.
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverTcell, DriverTea:
	default:
		return &InvalidConfigError{"driver", fmt.Sprintf("unknown driver %q (want %s or %s)", c.Driver, DriverTcell, DriverTea)}
	}
	if c.PollInterval <= 0 {
		return &InvalidConfigError{"poll_interval", "must be positive"}
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return &InvalidConfigError{"log.level", err.Error()}
	}
	if _, err := c.Theme(); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level, info when unparsable.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Theme converts the palette and glyph settings.
func (c *Config) Theme() (core.Theme, error) {
	var theme core.Theme

	colors := []struct {
		field string
		name  string
		dst   *core.Color
	}{
		{"palette.empty", c.Palette.Empty, &theme.Empty},
		{"palette.player", c.Palette.Player, &theme.Player},
		{"palette.computer", c.Palette.Computer, &theme.Computer},
		{"palette.selected", c.Palette.Selected, &theme.Selected},
		{"palette.candidate", c.Palette.Candidate, &theme.Candidate},
	}
	for _, col := range colors {
		parsed, err := core.ParseColor(col.name)
		if err != nil {
			return theme, &InvalidConfigError{col.field, err.Error()}
		}
		*col.dst = parsed
	}

	glyphs := []struct {
		field string
		value string
		dst   *rune
	}{
		{"glyphs.piece", c.Glyphs.Piece, &theme.Piece},
		{"glyphs.empty", c.Glyphs.Empty, &theme.Blank},
		{"glyphs.candidate", c.Glyphs.Candidate, &theme.Marker},
	}
	for _, g := range glyphs {
		r, err := parseGlyph(g.value)
		if err != nil {
			return theme, &InvalidConfigError{g.field, err.Error()}
		}
		*g.dst = r
	}
	return theme, nil
}

func parseGlyph(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("want exactly one character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r < 32 || (r >= 127 && r <= 159) {
		return 0, fmt.Errorf("control character %U not allowed", r)
	}
	return r, nil
}
