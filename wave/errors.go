package wave

import "errors"

// Sentinel errors for the wave package.
var (
	// ErrEmptyWeights indicates a Wave was constructed with zero patterns.
	ErrEmptyWeights = errors.New("wave: pattern weight vector must be non-empty")
)
