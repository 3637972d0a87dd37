package life

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is matched by errors for coordinates outside 1..N.
	ErrOutOfBounds = errors.New("life: coordinate out of bounds")
	// ErrUnknownPattern is returned when placing a pattern that was never registered.
	ErrUnknownPattern = errors.New("life: unknown pattern")
)

// OutOfBoundsError reports the rejected coordinate and the board size.
type OutOfBoundsError struct {
	X, Y int
	Size int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("life: coordinate (%d,%d) outside 1..%d", e.X, e.Y, e.Size)
}

// Unwrap lets errors.Is match ErrOutOfBounds.
func (e *OutOfBoundsError) Unwrap() error { return ErrOutOfBounds }
