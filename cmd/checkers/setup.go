package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-checkers/internal/config"
	"github.com/vovakirdan/tui-checkers/internal/registry"
)

// loadConfig reads the config file and applies command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagDriver != "" {
		cfg.Driver = flagDriver
	}
	if flagVariant != "" {
		cfg.Variant = flagVariant
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
		cfg.Storage.Enabled = true
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	if !registry.Exists(cfg.Variant) {
		return cfg, fmt.Errorf("unknown variant %q (run 'checkers variants')", cfg.Variant)
	}
	return cfg, nil
}

// openLogger opens the log file. The terminal belongs to the game, so
// nothing is logged to stdout or stderr while it runs.
func openLogger(cfg config.Config) (*log.Logger, func(), error) {
	path, err := cfg.LogPath()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot resolve log path: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "checkers",
		Level:           cfg.Level(),
	})
	return logger, func() { f.Close() }, nil
}
