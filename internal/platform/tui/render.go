package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-checkers/internal/core"
)

// styleFor maps a background color to a lipgloss style.
func styleFor(c core.Color) lipgloss.Style {
	idx := c.ANSI()
	if idx < 0 {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(strconv.Itoa(idx)))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same background to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startBg := s.GetCell(x, y).Bg

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Bg != startBg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startBg).Render(run.String()))
		}
	}
	return sb.String()
}

// centerText pads text so it is centered within width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
