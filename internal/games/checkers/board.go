package checkers

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-checkers/internal/core"
)

// Occupant tags what stands on a cell.
type Occupant uint8

const (
	Empty Occupant = iota
	Player
	Computer
)

func (o Occupant) String() string {
	switch o {
	case Empty:
		return "empty"
	case Player:
		return "player"
	case Computer:
		return "computer"
	default:
		return fmt.Sprintf("Occupant(%d)", o)
	}
}

// Cell is one of the nine fixed board positions.
type Cell struct {
	Coord
	Occupant Occupant
}

// Board owns the nine cells plus the transient selection state.
// It is mutated in place by the Machine and read by the Renderer.
type Board struct {
	cells [Size][Size]Cell // indexed [col][row]

	selected    Coord
	hasSelected bool
	candidates  []Coord

	screenW, screenH int
	running          bool
	rule             MoveRule
}

// initialRow is the occupant every cell of a row starts with.
var initialRow = [Size]Occupant{Computer, Empty, Player}

// NewBoard builds the starting layout: computer pieces on row 0,
// player pieces on row 2, nothing selected.
func NewBoard(screenW, screenH int, rule MoveRule) *Board {
	b := &Board{
		screenW: screenW,
		screenH: screenH,
		running: true,
		rule:    rule,
	}
	for _, c := range traversal {
		b.cells[c.Col][c.Row] = Cell{Coord: c, Occupant: initialRow[c.Row]}
	}
	return b
}

func (b *Board) cell(c Coord) *Cell {
	return &b.cells[c.Col][c.Row]
}

// Cell returns the cell at c. The bool is false for coordinates off the board.
func (b *Board) Cell(c Coord) (Cell, bool) {
	if !c.Valid() {
		return Cell{}, false
	}
	return *b.cell(c), true
}

// Occupant returns who stands at c; off-board coordinates read as Empty.
func (b *Board) Occupant(c Coord) Occupant {
	cell, _ := b.Cell(c)
	return cell.Occupant
}

// Cells returns a copy of every cell in traversal order.
func (b *Board) Cells() []Cell {
	out := make([]Cell, 0, Size*Size)
	for _, c := range traversal {
		out = append(out, *b.cell(c))
	}
	return out
}

// Selected returns the selected cell, if any.
func (b *Board) Selected() (Coord, bool) {
	return b.selected, b.hasSelected
}

// Candidates returns a copy of the current move candidates.
func (b *Board) Candidates() []Coord {
	return slices.Clone(b.candidates)
}

// IsCandidate reports whether c is a current move candidate.
func (b *Board) IsCandidate(c Coord) bool {
	return slices.Contains(b.candidates, c)
}

// Rule returns the move rule candidates are computed with.
func (b *Board) Rule() MoveRule {
	return b.rule
}

// ScreenSize returns the terminal size the layout is derived from.
func (b *Board) ScreenSize() (int, int) {
	return b.screenW, b.screenH
}

// Resize records new terminal dimensions. Occupancy and selection are kept.
func (b *Board) Resize(screenW, screenH int) {
	b.screenW = screenW
	b.screenH = screenH
}

// Origin returns the top-left terminal cell of the board for the current size.
func (b *Board) Origin() core.Point {
	return BoardOrigin(b.screenW, b.screenH)
}

// CellAt returns the first cell, in traversal order, whose hit area contains mouse.
func (b *Board) CellAt(mouse core.Point) (Coord, bool) {
	origin := b.Origin()
	for _, c := range traversal {
		if HitTest(origin, c.Col, c.Row, mouse) {
			return c, true
		}
	}
	return Coord{}, false
}

// Select picks the first Player cell whose hit area contains mouse and
// recomputes move candidates. A click that hits no Player cell clears
// the selection.
func (b *Board) Select(mouse core.Point) {
	origin := b.Origin()
	for _, c := range traversal {
		if b.cell(c).Occupant != Player || !HitTest(origin, c.Col, c.Row, mouse) {
			continue
		}
		b.selected = c
		b.hasSelected = true
		b.ComputeMoveCandidates()
		return
	}
	b.ClearSelection()
}

// ClearSelection drops the selection and its candidates.
func (b *Board) ClearSelection() {
	b.selected = Coord{}
	b.hasSelected = false
	b.candidates = nil
}

// ComputeMoveCandidates replaces the candidate set for the current selection.
func (b *Board) ComputeMoveCandidates() {
	b.candidates = nil
	if !b.hasSelected {
		return
	}
	b.candidates = b.rule.candidates(b, b.selected)
}

// ApplyMove moves the selected piece to dest, which must be a current
// candidate. On error the board is left untouched.
func (b *Board) ApplyMove(dest Coord) error {
	if !b.hasSelected {
		return ErrNoSelection
	}
	if !b.IsCandidate(dest) {
		return fmt.Errorf("%w: %v", ErrNotACandidate, dest)
	}
	b.cell(dest).Occupant = Player
	b.cell(b.selected).Occupant = Empty
	b.ClearSelection()
	return nil
}

// Quit ends the session. Calling it again has no effect.
func (b *Board) Quit() {
	b.running = false
}

// Running reports whether the session is live.
func (b *Board) Running() bool {
	return b.running
}
