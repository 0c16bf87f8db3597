// Package checkers implements a 3x3 checkers-like board driven by mouse clicks:
// terminal geometry, the board model, the selection state machine and the renderer.
package checkers

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-checkers/internal/core"
	"github.com/vovakirdan/tui-checkers/internal/registry"
)

// Registered game IDs, one per move rule.
const (
	ID         = "checkers"
	DiagonalID = "checkers-diagonal"
)

func init() {
	registry.Register(ID, func(setup registry.Setup) registry.Game {
		return New(RuleForward, setup)
	})
	registry.Register(DiagonalID, func(setup registry.Setup) registry.Game {
		return New(RuleDiagonal, setup)
	})
}

// Game ties a Board, its Machine and a Renderer together for the drivers.
type Game struct {
	rule     MoveRule
	setup    registry.Setup
	board    *Board
	machine  *Machine
	renderer *Renderer
	tooSmall bool
}

// New creates a game using the given move rule. Call Reset before use.
func New(rule MoveRule, setup registry.Setup) *Game {
	setup = setup.WithDefaults()
	return &Game{
		rule:     rule,
		setup:    setup,
		renderer: NewRenderer(setup.Theme),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.rule == RuleDiagonal {
		return DiagonalID
	}
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.rule == RuleDiagonal {
		return "Checkers 3x3 (diagonal moves)"
	}
	return "Checkers 3x3"
}

// Reset builds the starting board for the configured screen.
func (g *Game) Reset(cfg core.RuntimeConfig) error {
	if err := CheckScreen(cfg.ScreenW, cfg.ScreenH); err != nil {
		return err
	}
	logger := g.setup.Logger.With("game", g.ID())
	g.board = NewBoard(cfg.ScreenW, cfg.ScreenH, g.rule)
	g.machine = NewMachine(g.board, logger, g.setup.Journal)
	g.tooSmall = false
	logger.Info("new board", "width", cfg.ScreenW, "height", cfg.ScreenH, "rule", g.rule)
	return nil
}

// HandleEvent forwards ev to the state machine. While the terminal is too
// small for the board, clicks are ignored but quit and resize still work.
func (g *Game) HandleEvent(ev core.Event) bool {
	if g.machine == nil {
		return false
	}
	if _, isClick := ev.(core.MouseDown); isClick && g.tooSmall {
		return false
	}
	changed := g.machine.Handle(ev)
	if r, ok := ev.(core.Resize); ok && changed {
		g.tooSmall = !Fits(r.Width, r.Height)
	}
	return changed
}

// Render paints the current frame into dst.
func (g *Game) Render(dst *core.Screen) error {
	dst.Clear()
	if g.board == nil {
		return nil
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return nil
	}
	if err := g.renderer.Draw(g.board, dst); err != nil {
		return err
	}
	g.renderStatus(dst)
	return nil
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
}

// renderStatus writes a one-line hint below the board when there is room.
func (g *Game) renderStatus(dst *core.Screen) {
	far := CellRect(g.board.Origin(), Size-1, Size-1)
	y := far.Bottom() + 1
	if y >= dst.Height() {
		return
	}

	text := "click a piece · q quits"
	if sel, ok := g.board.Selected(); ok {
		n := len(g.board.Candidates())
		text = fmt.Sprintf("%v · %d move(s) · q quits", sel, n)
	}
	if utf8.RuneCountInString(text) > dst.Width() {
		return
	}
	dst.DrawTextCentered(y, text)
}

// Running reports whether the session is still live.
func (g *Game) Running() bool {
	return g.board != nil && g.board.Running()
}

// Board exposes the board for inspection.
func (g *Game) Board() *Board {
	return g.board
}

// State returns the interaction state.
func (g *Game) State() State {
	if g.machine == nil {
		return StateIdle
	}
	return g.machine.State()
}
