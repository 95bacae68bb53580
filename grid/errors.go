package grid

import "errors"

// Sentinel errors for the grid package.
var (
	// ErrOutOfRange indicates an index lies outside an array's declared size.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrSizeMismatch indicates a constructor received a non-positive dimension.
	ErrSizeMismatch = errors.New("grid: dimension must be positive")
)
