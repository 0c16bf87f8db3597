package checkers

import (
	"errors"
	"fmt"
)

var (
	ErrNoSelection   = errors.New("checkers: no piece selected")
	ErrNotACandidate = errors.New("checkers: destination is not a move candidate")
)

// ScreenTooSmallError reports a terminal that cannot hold the board.
type ScreenTooSmallError struct {
	Width, Height int
}

func (e *ScreenTooSmallError) Error() string {
	return fmt.Sprintf("checkers: terminal %dx%d is too small, need at least %dx%d",
		e.Width, e.Height, MinScreenW, MinScreenH)
}
