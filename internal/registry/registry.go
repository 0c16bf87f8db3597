// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-checkers/internal/core"
)

// Game is the interface every board game exposes to the terminal drivers.
// Games contain pure logic with no terminal dependencies.
// The drivers handle input polling, timing and flushing frames.
type Game interface {
	// ID returns a unique identifier (e.g., "checkers").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset builds a fresh board for the given screen.
	// Fails when the screen cannot hold the board.
	Reset(cfg core.RuntimeConfig) error

	// HandleEvent advances the game by one input event.
	// Returns true when the board changed and a redraw is needed.
	HandleEvent(ev core.Event) bool

	// Render paints the current frame into dst.
	Render(dst *core.Screen) error

	// Running reports whether the session is still live.
	Running() bool
}

// MoveJournal receives every applied move, in board coordinates.
type MoveJournal interface {
	RecordMove(from, to core.Point) error
}

// Setup carries the collaborators a factory wires into a new game.
type Setup struct {
	Logger  *log.Logger
	Theme   core.Theme
	Journal MoveJournal // may be nil
}

// WithDefaults fills unset collaborators: a discarding logger and the default theme.
func (s Setup) WithDefaults() Setup {
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}
	if s.Theme == (core.Theme{}) {
		s.Theme = core.DefaultTheme()
	}
	return s
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func(setup Setup) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f(Setup{}.WithDefaults())
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string, setup Setup) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(setup.WithDefaults()), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
