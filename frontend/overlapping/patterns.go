package overlapping

import (
	"github.com/arcflux/wfc/grid"
	"github.com/arcflux/wfc/image"
)

// extractPatternsAndWeights slides an NxN window over input (wrapping if
// opts.PeriodicInput, else stopping N-1 short of each edge), expands each
// window into opts.Symmetry canonical orientations, and deduplicates by
// pixel content. Patterns are indexed in order of first insertion during
// this single scan, so the result is deterministic across runs regardless
// of any underlying map's iteration order. A pattern's weight is the number
// of times it (in any orientation, at any window position) occurs.
func extractPatternsAndWeights(input image.Grid, opts Options) ([]image.Grid, []float64, error) {
	n := opts.PatternSize
	maxI, maxJ := input.Height(), input.Width()
	if !opts.PeriodicInput {
		maxI = input.Height() - n + 1
		maxJ = input.Width() - n + 1
	}

	var patterns []image.Grid
	var weights []float64
	// buckets groups pattern indices by Hash(), mirroring the reference
	// implementation's unordered_map<Image,...,ImageHash>: the hash narrows
	// the search to a small bucket, then Key() resolves the exact match.
	buckets := make(map[uint32][]int)

	for i := 0; i < maxI; i++ {
		for j := 0; j < maxJ; j++ {
			window := input.SubImage(i, j, n, n)
			oriented, err := image.GenerateSymmetries(window, opts.Symmetry)
			if err != nil {
				return nil, nil, err
			}
			for _, sym := range oriented {
				h := sym.Hash()
				key := sym.Key()
				found := -1
				for _, idx := range buckets[h] {
					if patterns[idx].Key() == key {
						found = idx
						break
					}
				}
				if found >= 0 {
					weights[found]++
					continue
				}
				buckets[h] = append(buckets[h], len(patterns))
				patterns = append(patterns, sym)
				weights = append(weights, 1)
			}
		}
	}
	return patterns, weights, nil
}

// agrees reports whether patterns p1 and p2 have identical pixels in the
// region where they overlap when p2 is placed at offset relative to p1.
func agrees(p1, p2 image.Grid, offset grid.Vec2) bool {
	yMin, yMax := 0, p1.Height()
	if offset.I < 0 {
		yMin = 0
		yMax = offset.I + p2.Height()
	} else {
		yMin = offset.I
		yMax = p1.Height()
	}
	xMin, xMax := 0, p1.Width()
	if offset.J < 0 {
		xMin = 0
		xMax = offset.J + p2.Width()
	} else {
		xMin = offset.J
		xMax = p1.Width()
	}

	for y := yMin; y < yMax; y++ {
		for x := xMin; x < xMax; x++ {
			if p1.Get(y, x) != p2.Get(y-offset.I, x-offset.J) {
				return false
			}
		}
	}
	return true
}
