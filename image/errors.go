package image

import "errors"

// Sentinel errors for the image package.
var (
	// ErrNotSquare indicates Rotate or Mirror was called on a non-square grid.
	ErrNotSquare = errors.New("image: grid must be square to rotate or mirror")

	// ErrUnknownSymmetry indicates an unrecognized symmetry class character.
	ErrUnknownSymmetry = errors.New("image: unknown symmetry class")
)
