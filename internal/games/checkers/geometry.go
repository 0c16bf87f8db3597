package checkers

import (
	"fmt"

	"github.com/vovakirdan/tui-checkers/internal/core"
)

// Board layout in terminal cells.
const (
	Size  = 3 // Cells per side
	CellW = 7 // Width of a cell
	CellH = 3 // Height of a cell
	GapW  = 2 // Horizontal gap between cells
	GapH  = 1 // Vertical gap between cells
)

// Smallest terminal that holds every cell rectangle, hit area included.
const (
	MinScreenW = 27
	MinScreenH = 13
)

// Coord is a logical board position. Col and Row are in 0..Size-1.
type Coord struct {
	Col, Row int
}

// Valid reports whether the coordinate lies on the board.
func (c Coord) Valid() bool {
	return c.Col >= 0 && c.Col < Size && c.Row >= 0 && c.Row < Size
}

// Point converts the coordinate to a core.Point (X = column, Y = row).
func (c Coord) Point() core.Point {
	return core.Point{X: c.Col, Y: c.Row}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// BoardOrigin returns the top-left terminal cell of the board, roughly
// centered on a screenW x screenH terminal. Integer division throughout;
// the result leans up and left.
func BoardOrigin(screenW, screenH int) core.Point {
	return core.Point{
		X: screenW/2 - CellW - CellW/2 - GapW,
		Y: screenH/2 - CellH - CellH/2 - GapH,
	}
}

// CellOrigin returns the top-left terminal cell of board cell (col, row).
func CellOrigin(origin core.Point, col, row int) core.Point {
	return core.Point{
		X: col*(CellW+GapW) + origin.X,
		Y: row*(CellH+GapH) + origin.Y,
	}
}

// CellRect returns the painted rectangle of board cell (col, row).
func CellRect(origin core.Point, col, row int) core.Rect {
	o := CellOrigin(origin, col, row)
	return core.NewRect(o.X, o.Y, CellW, CellH)
}

// HitTest reports whether mouse falls on board cell (col, row).
// The hit area is the cell rectangle with its right and bottom edges included.
func HitTest(origin core.Point, col, row int, mouse core.Point) bool {
	return CellRect(origin, col, row).ContainsInclusive(mouse.X, mouse.Y)
}

// Fits reports whether the whole board, hit areas included, lies inside
// a screenW x screenH terminal.
func Fits(screenW, screenH int) bool {
	origin := BoardOrigin(screenW, screenH)
	far := CellRect(origin, Size-1, Size-1)
	return origin.X >= 0 && origin.Y >= 0 && far.Right() < screenW && far.Bottom() < screenH
}

// CheckScreen returns a *ScreenTooSmallError when the board does not fit.
func CheckScreen(screenW, screenH int) error {
	if !Fits(screenW, screenH) {
		return &ScreenTooSmallError{Width: screenW, Height: screenH}
	}
	return nil
}

// traversal lists every coordinate in the order cells are hit-tested and painted.
var traversal = func() [Size * Size]Coord {
	var out [Size * Size]Coord
	i := 0
	for col := 0; col < Size; col++ {
		for row := 0; row < Size; row++ {
			out[i] = Coord{Col: col, Row: row}
			i++
		}
	}
	return out
}()
