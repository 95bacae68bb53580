package overlapping

import (
	"github.com/arcflux/wfc/grid"
	"github.com/arcflux/wfc/image"
	"github.com/arcflux/wfc/propagator"
	"github.com/arcflux/wfc/solver"
)

// Overlapping is the Overlapping front end: it owns the extracted patterns
// and the sample image, and drives a solver.Solver built from them.
type Overlapping struct {
	input    image.Grid
	opts     Options
	patterns []image.Grid
	wfc      *solver.Solver
}

// New builds an Overlapping synthesis over input. Returns
// ErrInvalidSymmetry/ErrInvalidPatternSize/ErrOutputTooSmall for malformed
// options, or ErrGroundNotFound if Options.Ground is set but no extracted
// pattern matches the sample's bottom-center window.
func New(input image.Grid, opts Options) (*Overlapping, error) {
	if opts.Symmetry < 1 || opts.Symmetry > 8 {
		return nil, ErrInvalidSymmetry
	}
	if opts.PatternSize <= 0 || opts.PatternSize > input.Height() || opts.PatternSize > input.Width() {
		return nil, ErrInvalidPatternSize
	}
	size := opts.waveSize()
	if size.I <= 0 || size.J <= 0 {
		return nil, ErrOutputTooSmall
	}

	patterns, weights, err := extractPatternsAndWeights(input, opts)
	if err != nil {
		return nil, err
	}
	adj := generateAdjacency(patterns)

	wfc, err := solver.New(size, adj, weights, opts.PeriodicOutput)
	if err != nil {
		return nil, err
	}

	o := &Overlapping{input: input, opts: opts, patterns: patterns, wfc: wfc}
	if opts.Ground {
		if _, err := o.groundPatternIndex(); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// generateAdjacency computes, for every direction and pattern pair,
// whether their NxN pixel windows agree on the overlap at that direction's
// offset. O(patterns^2 * directions) at construction time.
func generateAdjacency(patterns []image.Grid) propagator.AdjacencyList {
	adj := propagator.NewAdjacencyList(len(patterns))
	for d := 0; d < grid.NumDirections; d++ {
		offset := grid.DirectionOffset[d]
		for p1 := range patterns {
			for p2 := range patterns {
				if agrees(patterns[p1], patterns[p2], offset) {
					adj[d][p1] = append(adj[d][p1], p2)
				}
			}
		}
	}
	return adj
}

// groundPatternIndex locates the pattern equal to the sample's window at
// (height-1, width/2), the reference implementation's fixed ground anchor.
func (o *Overlapping) groundPatternIndex() (int, error) {
	n := o.opts.PatternSize
	anchor := o.input.SubImage(o.input.Height()-1, o.input.Width()/2, n, n)
	for i, p := range o.patterns {
		if p.Equal(anchor) {
			return i, nil
		}
	}
	return 0, ErrGroundNotFound
}

// initGround pins the ground pattern along the wave's bottom row and bans
// it everywhere else, then drains the propagator. Called once per Execute,
// after Solver.Init.
func (o *Overlapping) initGround() error {
	groundIdx, err := o.groundPatternIndex()
	if err != nil {
		return err
	}
	size := o.opts.waveSize()
	bottom := size.I - 1

	for j := 0; j < size.J; j++ {
		for p := range o.patterns {
			if p != groundIdx {
				o.wfc.Collapse(grid.NewVec2(bottom, j), p)
			}
		}
	}
	for i := 0; i < bottom; i++ {
		for j := 0; j < size.J; j++ {
			o.wfc.Collapse(grid.NewVec2(i, j), groundIdx)
		}
	}
	o.wfc.Propagate()
	return nil
}

// Execute runs one synthesis attempt with the given seed. Returns the
// rendered output image and true on success, or (zero, false, nil) on a
// clean contradiction.
func (o *Overlapping) Execute(seed int) (image.Grid, bool, error) {
	o.wfc.Init()
	if o.opts.Ground {
		if err := o.initGround(); err != nil {
			return image.Grid{}, false, err
		}
	}
	indices, ok := o.wfc.Execute(seed)
	if !ok {
		return image.Grid{}, false, nil
	}
	out, err := o.toImage(indices)
	if err != nil {
		return image.Grid{}, false, err
	}
	return out, true, nil
}

// toImage renders the solved pattern-index grid into an OutSize image. Each
// wave cell contributes its chosen pattern's top-left pixel; if the output
// is non-periodic, the last N-1 rows/columns (not covered directly by the
// wave) are extrapolated from the boundary patterns, matching the reference
// implementation's edge-completion rule.
func (o *Overlapping) toImage(indices *grid.Array2D[int]) (image.Grid, error) {
	out, err := image.NewGrid(o.opts.OutSize.I, o.opts.OutSize.J)
	if err != nil {
		return image.Grid{}, err
	}
	waveSize := o.opts.waveSize()
	for i := 0; i < waveSize.I; i++ {
		for j := 0; j < waveSize.J; j++ {
			pattern := o.patterns[indices.Get(i, j)]
			out.Set(i, j, pattern.Get(0, 0))
		}
	}

	if !o.opts.PeriodicOutput {
		n := o.opts.PatternSize
		rightIdx := waveSize.J - 1
		topIdx := waveSize.I - 1

		for i := 0; i < waveSize.I; i++ {
			pattern := o.patterns[indices.Get(i, rightIdx)]
			for dx := 1; dx < n; dx++ {
				out.Set(i, rightIdx+dx, pattern.Get(0, dx))
			}
		}
		for j := 0; j < waveSize.J; j++ {
			pattern := o.patterns[indices.Get(topIdx, j)]
			for dy := 1; dy < n; dy++ {
				out.Set(topIdx+dy, j, pattern.Get(dy, 0))
			}
		}
		corner := o.patterns[indices.Get(topIdx, rightIdx)]
		for dy := 1; dy < n; dy++ {
			for dx := 1; dx < n; dx++ {
				out.Set(topIdx+dy, rightIdx+dx, corner.Get(dy, dx))
			}
		}
	}
	return out, nil
}
