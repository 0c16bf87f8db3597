package core

import "fmt"

// Event is a logical input event produced by a terminal driver.
// Only the types declared in this package implement it.
type Event interface {
	isEvent()
}

// MouseDown is a left-button press at a terminal cell.
type MouseDown struct {
	X, Y int
}

// KeyPress is a printable key press.
type KeyPress struct {
	Rune rune
}

// Resize reports new terminal dimensions.
type Resize struct {
	Width, Height int
}

func (MouseDown) isEvent() {}
func (KeyPress) isEvent()  {}
func (Resize) isEvent()    {}

// Point returns the pressed cell as a Point.
func (m MouseDown) Point() Point {
	return Point{X: m.X, Y: m.Y}
}

func (m MouseDown) String() string {
	return fmt.Sprintf("mouse(%d,%d)", m.X, m.Y)
}

func (k KeyPress) String() string {
	return fmt.Sprintf("key(%q)", k.Rune)
}

func (r Resize) String() string {
	return fmt.Sprintf("resize(%dx%d)", r.Width, r.Height)
}

// QuitKey is the key that ends a session.
const QuitKey = 'q'

// IsQuit reports whether ev asks to end the session.
func IsQuit(ev Event) bool {
	k, ok := ev.(KeyPress)
	return ok && k.Rune == QuitKey
}
