package simpletiled

import (
	"github.com/arcflux/wfc/grid"
	"github.com/arcflux/wfc/image"
	"github.com/arcflux/wfc/solver"
)

// SimpleTiled is the SimpleTiled front end: a fixed tile set assembled
// according to explicit neighbor rules, with no sample image involved.
type SimpleTiled struct {
	tiles          []Tile
	opts           Options
	patterns       []patternIndex
	patternIndices [][]int
	wfc            *solver.Solver
}

// New builds a SimpleTiled synthesis from tiles and rules. ErrNoTiles if
// tiles is empty, ErrMismatchedTileSize if tile images aren't all the same
// square size.
func New(tiles []Tile, rules []NeighborRule, opts Options) (*SimpleTiled, error) {
	if len(tiles) == 0 {
		return nil, ErrNoTiles
	}
	size := tiles[0].Images[0].Height()
	for _, t := range tiles {
		for _, img := range t.Images {
			if img.Height() != size || img.Width() != size {
				return nil, ErrMismatchedTileSize
			}
		}
	}

	patterns := generatePatterns(tiles)
	patternIndices := generatePatternIndices(tiles)
	weights := computeWeights(tiles)
	adj := generatePropagator(tiles, patterns, patternIndices, rules)

	wfc, err := solver.New(opts.OutSize, adj, weights, opts.PeriodicOutput)
	if err != nil {
		return nil, err
	}

	return &SimpleTiled{
		tiles:          tiles,
		opts:           opts,
		patterns:       patterns,
		patternIndices: patternIndices,
		wfc:            wfc,
	}, nil
}

// SetTile pins tileIdx/orientation as the only possibility at cell, banning
// every other pattern there. Advisory preconditioning: call Propagate (or
// rely on Execute's observe loop) to actually enforce it. ErrTileOutOfRange
// / ErrOrientationOutOfRange on bad indices.
//
// The reference implementation's setTile banned by the raw tile index
// rather than the resolved (tile, orientation) pattern index — a bug, since
// tile and pattern index spaces only coincide by accident. This resolves to
// the correct pattern index.
func (s *SimpleTiled) SetTile(cell grid.Vec2, tileIdx, orientation int) error {
	if tileIdx < 0 || tileIdx >= len(s.patternIndices) {
		return ErrTileOutOfRange
	}
	if orientation < 0 || orientation >= len(s.patternIndices[tileIdx]) {
		return ErrOrientationOutOfRange
	}
	pinned := s.patternIndices[tileIdx][orientation]
	for p := range s.patterns {
		if p != pinned {
			s.wfc.Collapse(cell, p)
		}
	}
	return nil
}

// Execute runs one synthesis attempt with the given seed.
func (s *SimpleTiled) Execute(seed int) (image.Grid, bool, error) {
	s.wfc.Init()
	indices, ok := s.wfc.Execute(seed)
	if !ok {
		return image.Grid{}, false, nil
	}
	out, err := s.toImage(indices)
	if err != nil {
		return image.Grid{}, false, err
	}
	return out, true, nil
}

// toImage blits each solved cell's full-resolution tile image into its
// position in the output.
func (s *SimpleTiled) toImage(solved *grid.Array2D[int]) (image.Grid, error) {
	tileSize := s.tiles[0].Images[0].Height()
	height := s.opts.OutSize.I * tileSize
	width := s.opts.OutSize.J * tileSize

	out, err := image.NewGrid(height, width)
	if err != nil {
		return image.Grid{}, err
	}

	for i := 0; i < s.opts.OutSize.I; i++ {
		for j := 0; j < s.opts.OutSize.J; j++ {
			pattern := s.patterns[solved.Get(i, j)]
			tileImage := s.tiles[pattern.tileIndex].Images[pattern.imageIndex]
			for dy := 0; dy < tileSize; dy++ {
				for dx := 0; dx < tileSize; dx++ {
					out.Set(i*tileSize+dy, j*tileSize+dx, tileImage.Get(dy, dx))
				}
			}
		}
	}
	return out, nil
}
