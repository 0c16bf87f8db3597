package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-checkers/internal/config"
	"github.com/vovakirdan/tui-checkers/internal/core"
	"github.com/vovakirdan/tui-checkers/internal/registry"
)

// Model is the Bubble Tea model for playing one game.
// The frame is re-rendered only when the game reports a change.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	logger   *log.Logger
	shotDir  string
	frame    string
	err      error
	quitting bool
}

// NewModel creates a model for a game that was already Reset for cfg.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = core.DefaultConfig().PollInterval
	}
	m := Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		keys:    DefaultKeyMap(),
		logger:  logger,
		shotDir: config.ScreenshotDir(),
	}
	m.redraw()
	return m
}

// Init starts the idle tick.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.PollInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	var ev core.Event
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Screenshot) {
			m.saveScreenshot()
			return m, nil
		}
		ev = m.keys.MapKey(msg)

	case tea.MouseMsg:
		ev = MapMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		ev = core.Resize{Width: msg.Width, Height: msg.Height}

	case TickMsg:
		return m, tickCmd(m.config.PollInterval)
	}

	if ev == nil {
		return m, nil
	}
	m.logger.Debug("event", "ev", ev)

	changed := m.game.HandleEvent(ev)
	if !m.game.Running() {
		m.quitting = true
		m.logger.Info("game over", "game", m.game.ID())
		return m, tea.Quit
	}
	if changed {
		m.redraw()
		if m.err != nil {
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// redraw renders the game into the cached frame.
func (m *Model) redraw() {
	if err := m.game.Render(m.screen); err != nil {
		m.err = fmt.Errorf("tui: render: %w", err)
		return
	}
	m.frame = RenderScreen(m.screen)
}

// saveScreenshot writes the current board as plain text.
// A failed save is logged and play continues.
func (m *Model) saveScreenshot() {
	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("screenshot dir", "dir", m.shotDir, "err", err)
		return
	}
	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(m.shotDir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View returns the cached frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.frame
}

// Err returns the render error that stopped the program, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for game until it stops or ctx is cancelled.
func Run(ctx context.Context, game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)
	if model.err != nil {
		return model.err
	}

	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Report clicks
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		return fm.Err()
	}
	return nil
}
