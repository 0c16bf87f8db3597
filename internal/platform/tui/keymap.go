package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-checkers/internal/core"
)

// KeyMap defines the key bindings of the board screen.
type KeyMap struct {
	Quit       key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys(string(core.QuitKey), "ctrl+c"),
			key.WithHelp(string(core.QuitKey), "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// MapKey translates a key message to a game event, or nil.
// Every quit binding becomes the game's quit key.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Event {
	if key.Matches(msg, k.Quit) {
		return core.KeyPress{Rune: core.QuitKey}
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return core.KeyPress{Rune: msg.Runes[0]}
	}
	return nil
}

// MapMouse translates a mouse message to a game event, or nil.
// Only left-button presses count as clicks.
func MapMouse(msg tea.MouseMsg) core.Event {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	return core.MouseDown{X: msg.X, Y: msg.Y}
}
