package overlapping

import "errors"

// Sentinel errors for the overlapping front end.
var (
	// ErrGroundNotFound indicates Options.Ground was set but the sample's
	// bottom-center window does not match any extracted pattern.
	ErrGroundNotFound = errors.New("overlapping: ground pattern not found among extracted patterns")

	// ErrInvalidSymmetry indicates Options.Symmetry is outside [1,8].
	ErrInvalidSymmetry = errors.New("overlapping: symmetry must be in [1,8]")

	// ErrInvalidPatternSize indicates Options.PatternSize is non-positive or
	// larger than the sample image.
	ErrInvalidPatternSize = errors.New("overlapping: pattern size must be positive and fit the sample")

	// ErrOutputTooSmall indicates Options.OutSize is too small to hold a
	// single pattern_size window once non-periodic trimming is applied.
	ErrOutputTooSmall = errors.New("overlapping: output size too small for the chosen pattern size")
)
