package model

import "errors"

var (
	// ErrInvalidGrid indicates an empty or non-rectangular grid.
	ErrInvalidGrid = errors.New("invalid grid")
	// ErrInvalidCoordinate indicates a cell outside the grid bounds.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// ErrInvalidFilename indicates a maze filename that is not a .txt file.
	ErrInvalidFilename = errors.New("invalid maze filename")
	// ErrInvalidDimensions indicates a missing or malformed dimensions line.
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
)
