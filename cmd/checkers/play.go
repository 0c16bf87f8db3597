package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-checkers/internal/config"
	"github.com/vovakirdan/tui-checkers/internal/core"
	"github.com/vovakirdan/tui-checkers/internal/games/checkers"
	termdrv "github.com/vovakirdan/tui-checkers/internal/platform/term"
	"github.com/vovakirdan/tui-checkers/internal/platform/tui"
	"github.com/vovakirdan/tui-checkers/internal/registry"
	"github.com/vovakirdan/tui-checkers/internal/storage"
)

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Fail before touching the terminal when it cannot hold the board
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("stdout is not a terminal")
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("cannot read terminal size: %w", err)
	}
	if err := checkers.CheckScreen(width, height); err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	theme, err := cfg.Theme()
	if err != nil {
		return err
	}

	session, closeJournal := openJournal(cfg, logger)
	defer closeJournal()

	setup := registry.Setup{Logger: logger, Theme: theme}
	if session != nil {
		setup.Journal = session
	}
	game, err := registry.Create(cfg.Variant, setup)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rc := core.RuntimeConfig{ScreenW: width, ScreenH: height, PollInterval: cfg.PollInterval}
	logger.Info("driver start", "driver", cfg.Driver, "variant", cfg.Variant)

	switch cfg.Driver {
	case config.DriverTea:
		if err = game.Reset(rc); err == nil {
			err = tui.Run(ctx, game, rc, logger)
		}
	default:
		err = runTcell(ctx, game, rc, logger)
	}

	logger.Info("driver stop", "driver", cfg.Driver, "err", err)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// runTcell takes over the terminal with tcell and restores it on return.
func runTcell(ctx context.Context, game registry.Game, rc core.RuntimeConfig, logger *log.Logger) error {
	d, err := termdrv.OpenTcell()
	if err != nil {
		return err
	}
	defer d.Close()

	rc.ScreenW, rc.ScreenH = d.Size()
	if err := game.Reset(rc); err != nil {
		return err
	}
	return termdrv.Run(ctx, game, d, rc.PollInterval, logger)
}

// openJournal starts a journal session. Storage failures only disable the journal.
func openJournal(cfg config.Config, logger *log.Logger) (*storage.Session, func()) {
	noop := func() {}
	if !cfg.Storage.Enabled {
		return nil, noop
	}

	path, err := cfg.DBPath()
	if err != nil {
		logger.Warn("journal disabled", "err", err)
		return nil, noop
	}
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("journal disabled", "path", path, "err", err)
		return nil, noop
	}
	session, err := store.StartSession(cfg.Variant)
	if err != nil {
		logger.Warn("journal disabled", "err", err)
		closeStore(store, logger)
		return nil, noop
	}

	logger.Debug("journal session started", "session", session.ID(), "path", path)
	return session, func() {
		if err := session.End(); err != nil {
			logger.Warn("could not close journal session", "err", err)
		}
		logger.Info("session closed", "session", session.ID(), "moves", session.Moves())
		closeStore(store, logger)
	}
}

// closeStore closes the journal store, logging a failure instead of returning it.
func closeStore(c io.Closer, logger *log.Logger) {
	if err := c.Close(); err != nil {
		logger.Warn("could not close journal", "err", err)
	}
}
