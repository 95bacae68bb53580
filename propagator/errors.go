package propagator

import "errors"

// Sentinel errors for the propagator package.
var (
	// ErrEmptyAdjacency indicates New was called with zero patterns.
	ErrEmptyAdjacency = errors.New("propagator: adjacency list must cover at least one pattern")
)
