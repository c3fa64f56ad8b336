package model

import "github.com/pkg/errors"

var (
	// ErrInvalidSize is returned when a grid cannot be built with the requested dimensions
	ErrInvalidSize = errors.New("invalid grid size")
	// ErrOutOfBounds is returned when a coordinate falls outside the grid
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)
