package checkers

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-checkers/internal/core"
	"github.com/vovakirdan/tui-checkers/internal/registry"
)

// State is the interaction state derived from the board.
type State uint8

const (
	StateIdle State = iota
	StateSelected
	StateTerminal
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelected:
		return "selected"
	case StateTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Machine turns input events into board mutations.
//
// In Selected, a click resolves in this order: any Player cell reselects,
// a move candidate applies the move, anything else deselects.
type Machine struct {
	board   *Board
	logger  *log.Logger
	journal registry.MoveJournal
}

// NewMachine wires a machine to an owned board. journal may be nil.
func NewMachine(b *Board, logger *log.Logger, journal registry.MoveJournal) *Machine {
	return &Machine{board: b, logger: logger, journal: journal}
}

// State returns the current interaction state.
func (m *Machine) State() State {
	switch {
	case !m.board.Running():
		return StateTerminal
	case m.board.hasSelected:
		return StateSelected
	default:
		return StateIdle
	}
}

// Handle applies one event. Returns true when the board changed.
// After quit every event is ignored.
func (m *Machine) Handle(ev core.Event) bool {
	if !m.board.Running() {
		return false
	}

	switch ev := ev.(type) {
	case core.KeyPress:
		if !core.IsQuit(ev) {
			return false
		}
		m.board.Quit()
		m.logger.Info("quit", "state", m.State())
		return true

	case core.Resize:
		m.board.Resize(ev.Width, ev.Height)
		m.logger.Debug("resize", "width", ev.Width, "height", ev.Height)
		return true

	case core.MouseDown:
		return m.click(ev.Point())
	}

	return false
}

func (m *Machine) click(p core.Point) bool {
	if m.State() == StateIdle {
		m.board.Select(p)
		sel, ok := m.board.Selected()
		if !ok {
			return false
		}
		m.logger.Debug("select", "cell", sel, "candidates", m.board.Candidates())
		return true
	}

	target, hit := m.board.CellAt(p)
	switch {
	case hit && m.board.Occupant(target) == Player:
		m.board.Select(p)
		m.logger.Debug("reselect", "cell", target, "candidates", m.board.Candidates())

	case hit && m.board.IsCandidate(target):
		from, _ := m.board.Selected()
		if err := m.board.ApplyMove(target); err != nil {
			m.logger.Warn("move rejected", "from", from, "to", target, "err", err)
			m.board.ClearSelection()
			return true
		}
		m.logger.Info("move", "from", from, "to", target)
		m.record(from, target)

	default:
		m.board.ClearSelection()
		m.logger.Debug("deselect", "at", p)
	}
	return true
}

func (m *Machine) record(from, to Coord) {
	if m.journal == nil {
		return
	}
	if err := m.journal.RecordMove(from.Point(), to.Point()); err != nil {
		m.logger.Warn("could not journal move", "err", err)
	}
}
