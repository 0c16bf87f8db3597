package core

import (
	"fmt"
	"strings"
)

// Color represents a cell color.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

var colorInfo = [...]struct {
	name string
	ansi int
}{
	ColorDefault:       {"default", -1},
	ColorBlack:         {"black", 0},
	ColorRed:           {"red", 1},
	ColorGreen:         {"green", 2},
	ColorYellow:        {"yellow", 3},
	ColorBlue:          {"blue", 4},
	ColorMagenta:       {"magenta", 5},
	ColorCyan:          {"cyan", 6},
	ColorWhite:         {"white", 7},
	ColorBrightRed:     {"bright-red", 9},
	ColorBrightGreen:   {"bright-green", 10},
	ColorBrightYellow:  {"bright-yellow", 11},
	ColorBrightBlue:    {"bright-blue", 12},
	ColorBrightMagenta: {"bright-magenta", 13},
	ColorBrightCyan:    {"bright-cyan", 14},
	ColorBrightWhite:   {"bright-white", 15},
	ColorOrange:        {"orange", 208},
	ColorGray:          {"gray", 245},
}

// ANSI returns the 256-color palette index, or -1 for the terminal default.
func (c Color) ANSI() int {
	if int(c) >= len(colorInfo) {
		return -1
	}
	return colorInfo[c].ansi
}

// String returns the configuration name of the color.
func (c Color) String() string {
	if int(c) >= len(colorInfo) {
		return fmt.Sprintf("Color(%d)", c)
	}
	return colorInfo[c].name
}

// ParseColor resolves a configuration name such as "bright-blue".
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, info := range colorInfo {
		if info.name == name {
			return Color(i), nil
		}
	}
	return ColorDefault, fmt.Errorf("unknown color %q", name)
}
