package checkers

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-checkers/internal/core"
	"github.com/vovakirdan/tui-checkers/internal/registry"
)

func newTestMachine(rule MoveRule, journal *fakeJournal) (*Machine, *Board) {
	b := NewBoard(testW, testH, rule)
	var j registry.MoveJournal
	if journal != nil {
		j = journal
	}
	return NewMachine(b, log.New(io.Discard), j), b
}

func TestMachineEndToEnd(t *testing.T) {
	journal := &fakeJournal{}
	m, b := newTestMachine(RuleForward, journal)
	require.Equal(t, StateIdle, m.State())

	// Given: a click inside the player piece at (1,2)
	changed := m.Handle(mouseOn(Coord{Col: 1, Row: 2}))

	// Then: it is selected with a single forward candidate
	require.True(t, changed)
	require.Equal(t, StateSelected, m.State())
	assert.Equal(t, []Coord{{Col: 1, Row: 1}}, b.Candidates())

	// When: the candidate is clicked
	changed = m.Handle(mouseOn(Coord{Col: 1, Row: 1}))

	// Then: the piece moves and the machine is idle again
	require.True(t, changed)
	assert.Equal(t, StateIdle, m.State())
	assert.Equal(t, Player, b.Occupant(Coord{Col: 1, Row: 1}))
	assert.Equal(t, Empty, b.Occupant(Coord{Col: 1, Row: 2}))
	assert.Empty(t, b.Candidates())

	require.Len(t, journal.moves, 1)
	assert.Equal(t, core.Point{X: 1, Y: 2}, journal.moves[0].from)
	assert.Equal(t, core.Point{X: 1, Y: 1}, journal.moves[0].to)
}

func TestMachineIdleClickOnNonPlayerIsIgnored(t *testing.T) {
	m, b := newTestMachine(RuleForward, nil)
	before := occupancy(b)

	assert.False(t, m.Handle(mouseOn(Coord{Col: 2, Row: 0})))
	assert.False(t, m.Handle(mouseOn(Coord{Col: 2, Row: 1})))
	assert.False(t, m.Handle(core.MouseDown{X: nowhere.X, Y: nowhere.Y}))

	assert.Equal(t, StateIdle, m.State())
	assert.Equal(t, before, occupancy(b))
}

func TestMachineReselect(t *testing.T) {
	m, b := newTestMachine(RuleDiagonal, nil)

	m.Handle(mouseOn(Coord{Col: 0, Row: 2}))
	require.Equal(t, []Coord{{0, 1}, {1, 1}}, b.Candidates())

	changed := m.Handle(mouseOn(Coord{Col: 2, Row: 2}))

	assert.True(t, changed)
	assert.Equal(t, StateSelected, m.State())
	sel, _ := b.Selected()
	assert.Equal(t, Coord{Col: 2, Row: 2}, sel)
	assert.Equal(t, []Coord{{2, 1}, {1, 1}}, b.Candidates())
}

func TestMachineDeselect(t *testing.T) {
	tests := []struct {
		name  string
		click core.MouseDown
	}{
		{"empty non-candidate cell", mouseOn(Coord{Col: 0, Row: 1})},
		{"computer cell", mouseOn(Coord{Col: 1, Row: 0})},
		{"outside the board", core.MouseDown{X: nowhere.X, Y: nowhere.Y}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, b := newTestMachine(RuleForward, nil)
			m.Handle(mouseOn(Coord{Col: 1, Row: 2}))
			require.Equal(t, StateSelected, m.State())
			before := occupancy(b)

			changed := m.Handle(tc.click)

			assert.True(t, changed)
			assert.Equal(t, StateIdle, m.State())
			assert.Empty(t, b.Candidates())
			assert.Equal(t, before, occupancy(b))
		})
	}
}

func TestMachinePlayerCellWinsOverCandidate(t *testing.T) {
	m, b := newTestMachine(RuleForward, nil)
	// (1,1) holds a player piece but stays a candidate through the open diagonals
	b.cell(Coord{Col: 1, Row: 1}).Occupant = Player

	m.Handle(mouseOn(Coord{Col: 1, Row: 2}))
	require.True(t, b.IsCandidate(Coord{Col: 1, Row: 1}))

	m.Handle(mouseOn(Coord{Col: 1, Row: 1}))

	sel, ok := b.Selected()
	require.True(t, ok)
	assert.Equal(t, Coord{Col: 1, Row: 1}, sel)
	assert.Equal(t, Player, b.Occupant(Coord{Col: 1, Row: 2}))
}

func TestMachineQuit(t *testing.T) {
	m, b := newTestMachine(RuleForward, nil)
	m.Handle(mouseOn(Coord{Col: 1, Row: 2}))
	require.Equal(t, StateSelected, m.State())

	assert.True(t, m.Handle(core.KeyPress{Rune: 'q'}))
	assert.False(t, b.Running())
	assert.Equal(t, StateTerminal, m.State())

	before := occupancy(b)
	beforeSel, _ := b.Selected()

	// Nothing mutates after quit
	assert.False(t, m.Handle(mouseOn(Coord{Col: 1, Row: 1})))
	assert.False(t, m.Handle(core.Resize{Width: 100, Height: 40}))
	assert.False(t, m.Handle(core.KeyPress{Rune: 'q'}))

	assert.Equal(t, before, occupancy(b))
	sel, _ := b.Selected()
	assert.Equal(t, beforeSel, sel)
	w, _ := b.ScreenSize()
	assert.Equal(t, testW, w)
}

func TestMachineIgnoresOtherKeys(t *testing.T) {
	m, b := newTestMachine(RuleForward, nil)

	assert.False(t, m.Handle(core.KeyPress{Rune: 'x'}))
	assert.True(t, b.Running())
}

func TestMachineResize(t *testing.T) {
	m, b := newTestMachine(RuleForward, nil)

	assert.True(t, m.Handle(core.Resize{Width: 100, Height: 30}))

	w, h := b.ScreenSize()
	assert.Equal(t, 100, w)
	assert.Equal(t, 30, h)
	assert.Equal(t, StateIdle, m.State())
}

func TestMachineJournalErrorDoesNotStopMove(t *testing.T) {
	journal := &fakeJournal{err: errors.New("disk full")}
	m, b := newTestMachine(RuleForward, journal)

	m.Handle(mouseOn(Coord{Col: 0, Row: 2}))
	m.Handle(mouseOn(Coord{Col: 0, Row: 1}))

	assert.Equal(t, Player, b.Occupant(Coord{Col: 0, Row: 1}))
	assert.Len(t, journal.moves, 1)
}
