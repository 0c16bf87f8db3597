package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

// AppName names the XDG subdirectories.
const AppName = "tui-checkers"

//go:embed defaults/checkers.yaml
var defaultYAML []byte

// localConfigPath is checked when no user config exists.
const localConfigPath = "configs/checkers.yaml"

// Defaults returns the embedded default configuration.
func Defaults() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// Load reads the configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/tui-checkers/config.yaml ->
// ./configs/checkers.yaml -> embedded default. Environment variables
// override whatever file was used.
func Load(customPath string) (Config, error) {
	cfg := Defaults()

	path := customPath
	if path == "" {
		path = findConfigFile()
	}

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot load %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("config: cannot read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if p, err := xdg.SearchConfigFile(filepath.Join(AppName, "config.yaml")); err == nil {
		return p
	}
	if _, err := os.Stat(localConfigPath); err == nil {
		return localConfigPath
	}
	return ""
}

// UserConfigPath returns where a user config file lives, creating its directory.
func UserConfigPath() (string, error) {
	return xdg.ConfigFile(filepath.Join(AppName, "config.yaml"))
}

// WriteDefault writes the embedded defaults to path unless a file exists there.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config: %s already exists", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: cannot stat %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: cannot create directory: %w", err)
	}
	if err := os.WriteFile(path, defaultYAML, 0o644); err != nil {
		return fmt.Errorf("config: cannot write %s: %w", path, err)
	}
	return nil
}

// DBPath returns the journal path, defaulting to the XDG data dir.
func (c *Config) DBPath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	return xdg.DataFile(filepath.Join(AppName, "journal.db"))
}

// LogPath returns the log file path, defaulting to the XDG state dir.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return xdg.StateFile(filepath.Join(AppName, "checkers.log"))
}

// ScreenshotDir returns the directory board screenshots are written to.
func ScreenshotDir() string {
	return filepath.Join(xdg.StateHome, AppName, "screenshots")
}
