package checkers

import "github.com/vovakirdan/tui-checkers/internal/core"

// Canvas receives single-cell paints. *core.Screen implements it.
type Canvas interface {
	Paint(x, y int, glyph rune, bg core.Color) error
}

// Renderer paints a board: base cells, then the selection, then
// candidate markers, so overlays are never covered.
type Renderer struct {
	theme core.Theme
}

// NewRenderer creates a renderer for the given theme.
func NewRenderer(theme core.Theme) *Renderer {
	return &Renderer{theme: theme}
}

// ColorFor returns the base color of an occupant.
func (r *Renderer) ColorFor(o Occupant) core.Color {
	switch o {
	case Player:
		return r.theme.Player
	case Computer:
		return r.theme.Computer
	default:
		return r.theme.Empty
	}
}

func (r *Renderer) glyphFor(o Occupant) rune {
	if o == Empty {
		return r.theme.Blank
	}
	return r.theme.Piece
}

// Draw paints b onto dst. The first paint error aborts the frame.
func (r *Renderer) Draw(b *Board, dst Canvas) error {
	origin := b.Origin()

	for _, cell := range b.Cells() {
		rect := CellRect(origin, cell.Col, cell.Row)
		if err := fill(dst, rect, r.glyphFor(cell.Occupant), r.ColorFor(cell.Occupant)); err != nil {
			return err
		}
	}

	if sel, ok := b.Selected(); ok {
		rect := CellRect(origin, sel.Col, sel.Row)
		if err := fill(dst, rect, r.theme.Piece, r.theme.Selected); err != nil {
			return err
		}
	}

	for _, c := range b.Candidates() {
		for _, p := range CellRect(origin, c.Col, c.Row).Corners() {
			if err := dst.Paint(p.X, p.Y, r.theme.Marker, r.theme.Candidate); err != nil {
				return err
			}
		}
	}
	return nil
}

func fill(dst Canvas, rect core.Rect, glyph rune, bg core.Color) error {
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			if err := dst.Paint(x, y, glyph, bg); err != nil {
				return err
			}
		}
	}
	return nil
}
