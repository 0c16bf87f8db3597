package checkers

import (
	"github.com/vovakirdan/tui-checkers/internal/core"
)

const (
	testW = 80
	testH = 24
)

// clickOn returns the center of cell c on a testW x testH screen.
func clickOn(c Coord) core.Point {
	x, y := CellRect(BoardOrigin(testW, testH), c.Col, c.Row).Center()
	return core.Point{X: x, Y: y}
}

// nowhere is a screen point outside every cell.
var nowhere = core.Point{X: 0, Y: 0}

func mouseOn(c Coord) core.MouseDown {
	p := clickOn(c)
	return core.MouseDown{X: p.X, Y: p.Y}
}

func occupancy(b *Board) map[Coord]Occupant {
	out := make(map[Coord]Occupant)
	for _, cell := range b.Cells() {
		out[cell.Coord] = cell.Occupant
	}
	return out
}

type recordedMove struct {
	from, to core.Point
}

type fakeJournal struct {
	moves []recordedMove
	err   error
}

func (j *fakeJournal) RecordMove(from, to core.Point) error {
	j.moves = append(j.moves, recordedMove{from, to})
	return j.err
}
