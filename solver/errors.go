package solver

import "errors"

// Sentinel errors for the solver package.
var (
	// ErrZeroWeights indicates every pattern weight was zero, so the
	// weight vector cannot be normalized to a probability distribution.
	ErrZeroWeights = errors.New("solver: cannot normalize an all-zero weight vector")
)
