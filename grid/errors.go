package grid

import "errors"

var (
	// ErrMalformedGrid is wrapped by every error caused by unusable grid text.
	ErrMalformedGrid = errors.New("grid: malformed grid")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownSymbol indicates a character outside the grid alphabet.
	ErrUnknownSymbol = errors.New("grid: unknown symbol")
	// ErrMultipleStart indicates more than one start marker.
	ErrMultipleStart = errors.New("grid: more than one start marker")
	// ErrMissingStart indicates the grid has no start marker.
	ErrMissingStart = errors.New("grid: start marker not found")
	// ErrOutOfBounds indicates a position outside the declared bounds.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
)
