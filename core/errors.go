package core

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrOutOfRange     = errors.New("coordinate out of range")
	ErrEmptySelection = errors.New("selection from empty set")
)

// RangeError reports a voxel access outside the world bounds
type RangeError struct {
	X, Y, Z int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("voxel (%d,%d,%d): %v", e.X, e.Y, e.Z, ErrOutOfRange)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
