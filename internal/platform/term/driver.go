// Package term runs a game against a terminal driver: it polls input with a
// timeout, feeds events to the game and flushes a full frame whenever the
// game reports a change.
package term

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-checkers/internal/core"
	"github.com/vovakirdan/tui-checkers/internal/registry"
)

// ErrClosed is returned by Poll once the terminal has shut down.
var ErrClosed = errors.New("term: driver closed")

// Driver is a terminal that delivers input and shows frames.
type Driver interface {
	// Size returns the current terminal size in cells.
	Size() (width, height int)

	// Poll waits up to timeout for one input event.
	// A nil event with a nil error means the wait timed out.
	Poll(ctx context.Context, timeout time.Duration) (core.Event, error)

	// Present replaces the visible terminal contents with frame.
	Present(frame *core.Screen) error

	// Close restores the terminal.
	Close() error
}

// Run drives game until it stops running or ctx is cancelled.
// The game must already be Reset for the driver's size.
func Run(ctx context.Context, game registry.Game, d Driver, poll time.Duration, logger *log.Logger) error {
	if poll <= 0 {
		poll = core.DefaultConfig().PollInterval
	}

	w, h := d.Size()
	frame := core.NewScreen(w, h)
	if err := present(game, d, frame); err != nil {
		return err
	}

	for game.Running() {
		ev, err := d.Poll(ctx, poll)
		if err != nil {
			return err
		}
		if ev == nil {
			continue
		}
		logger.Debug("event", "ev", ev)

		if r, ok := ev.(core.Resize); ok {
			frame.Resize(r.Width, r.Height)
		}
		if !game.HandleEvent(ev) || !game.Running() {
			continue
		}
		if err := present(game, d, frame); err != nil {
			return err
		}
	}

	logger.Info("game over", "game", game.ID())
	return nil
}

func present(game registry.Game, d Driver, frame *core.Screen) error {
	if err := game.Render(frame); err != nil {
		return fmt.Errorf("term: render: %w", err)
	}
	if err := d.Present(frame); err != nil {
		return fmt.Errorf("term: present: %w", err)
	}
	return nil
}
