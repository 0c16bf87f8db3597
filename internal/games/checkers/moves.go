package checkers

import (
	"fmt"
	"slices"
)

// MoveRule decides which destinations a selected piece may move to.
type MoveRule uint8

const (
	// RuleForward checks the cell straight ahead and both forward
	// diagonals, but every passing check yields the straight-ahead cell.
	RuleForward MoveRule = iota
	// RuleDiagonal yields the destination of each passing check.
	RuleDiagonal
)

// forwardSteps are the column offsets checked on the row ahead, in order.
var forwardSteps = [...]int{0, 1, -1}

func (r MoveRule) String() string {
	switch r {
	case RuleForward:
		return "forward"
	case RuleDiagonal:
		return "diagonal"
	default:
		return fmt.Sprintf("MoveRule(%d)", r)
	}
}

// candidates returns the destinations for a Player piece at from.
// Player pieces advance toward row 0. Neighbors off the board are discarded.
func (r MoveRule) candidates(b *Board, from Coord) []Coord {
	var out []Coord
	for _, dc := range forwardSteps {
		ahead := Coord{Col: from.Col + dc, Row: from.Row - 1}
		if !ahead.Valid() || b.cell(ahead).Occupant != Empty {
			continue
		}
		dest := Coord{Col: from.Col, Row: from.Row - 1}
		if r == RuleDiagonal {
			dest = ahead
		}
		if !slices.Contains(out, dest) {
			out = append(out, dest)
		}
	}
	return out
}
