package overlapping

import "github.com/arcflux/wfc/grid"

// Options configures an Overlapping synthesis. Defaults matching the job
// file schema (see internal/config) are N=3, Symmetry=8, PeriodicInput=true,
// Ground=false; there is no default for OutSize or PeriodicOutput.
type Options struct {
	// PatternSize is the side length N of the sliding window.
	PatternSize int
	// Symmetry is how many of the eight canonical orientations to extract
	// per window, in [1,8].
	Symmetry int
	// PeriodicInput wraps the sliding window around the sample's edges.
	PeriodicInput bool
	// PeriodicOutput wraps the propagator across the output's edges.
	PeriodicOutput bool
	// Ground pins a designated floor pattern along the output's bottom row.
	Ground bool
	// OutSize is the rendered output's (height, width) in pixels.
	OutSize grid.Vec2
}

// waveSize returns the solver's wave dimensions: OutSize directly if
// PeriodicOutput, else OutSize shrunk by (N-1, N-1) since the last N-1
// rows/columns are filled in by extrapolation at render time rather than
// solved directly (see (*Overlapping).toImage).
func (o Options) waveSize() grid.Vec2 {
	if o.PeriodicOutput {
		return o.OutSize
	}
	return grid.NewVec2(o.OutSize.I-(o.PatternSize-1), o.OutSize.J-(o.PatternSize-1))
}
