package core

// Theme holds the finite palette and glyphs a board is painted with.
type Theme struct {
	Empty     Color
	Player    Color
	Computer  Color
	Selected  Color
	Candidate Color

	Piece  rune // Glyph filling occupied cells
	Blank  rune // Glyph filling empty cells
	Marker rune // Glyph for move-candidate corners
}

// DefaultTheme returns the stock palette.
func DefaultTheme() Theme {
	return Theme{
		Empty:     ColorGray,
		Player:    ColorBlue,
		Computer:  ColorRed,
		Selected:  ColorYellow,
		Candidate: ColorGreen,
		Piece:     ' ',
		Blank:     ' ',
		Marker:    ' ',
	}
}
