package imagemosaic

import (
	"github.com/arcflux/wfc/grid"
	"github.com/arcflux/wfc/image"
	"github.com/arcflux/wfc/propagator"
	"github.com/arcflux/wfc/solver"
	"github.com/rs/zerolog/log"
)

// ImageMosaic is the ImageMosaic front end: a fixed tile set assembled
// according to an explicit directional adjacency table, with no symmetry
// expansion or sample image involved.
type ImageMosaic struct {
	tiles []Tile
	opts  Options
	wfc   *solver.Solver
}

// New builds an ImageMosaic synthesis from tiles and an explicit adjacency
// table. ErrNoTiles if tiles is empty, ErrMismatchedTileSize if tile images
// aren't all the same square size.
func New(tiles []Tile, adjacency AdjacencyTable, opts Options) (*ImageMosaic, error) {
	if len(tiles) == 0 {
		return nil, ErrNoTiles
	}
	size := tiles[0].Image.Height()
	for _, t := range tiles {
		if t.Image.Height() != size || t.Image.Width() != size {
			return nil, ErrMismatchedTileSize
		}
	}

	weights := make([]float64, len(tiles))
	for i, t := range tiles {
		weights[i] = t.Weight
	}

	adj := generatePropagator(tiles, adjacency)

	wfc, err := solver.New(opts.OutSize, adj, weights, opts.PeriodicOutput)
	if err != nil {
		return nil, err
	}
	return &ImageMosaic{tiles: tiles, opts: opts, wfc: wfc}, nil
}

// generatePropagator symmetrizes adjacency: tiles i, j are compatible in
// direction d if either adjacency[d][i][j] or adjacency[Opposite(d)][j][i]
// is declared. A declaration present on only one side is accepted, with a
// logged warning, since rule authors commonly declare only one side of a
// pair.
func generatePropagator(tiles []Tile, adjacency AdjacencyTable) propagator.AdjacencyList {
	n := len(tiles)
	adj := propagator.NewAdjacencyList(n)
	for d := 0; d < grid.NumDirections; d++ {
		opp := grid.OppositeDirection[d]
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				forward := adjacency[d][i][j]
				reverse := adjacency[opp][j][i]
				if !forward && !reverse {
					continue
				}
				if !forward {
					offset := grid.DirectionOffset[d]
					log.Warn().
						Int("tile_i", i).
						Int("tile_j", j).
						Int("offset_i", offset.I).
						Int("offset_j", offset.J).
						Msg("imagemosaic: missing one-sided neighbor declaration, symmetrizing")
				}
				adj[d][i] = append(adj[d][i], j)
			}
		}
	}
	return adj
}

// SetTile pins tileIdx as the only possibility at cell, banning every other
// tile there. Advisory preconditioning: call Propagate (or rely on
// Execute's observe loop) to actually enforce it.
func (m *ImageMosaic) SetTile(cell grid.Vec2, tileIdx int) error {
	if tileIdx < 0 || tileIdx >= len(m.tiles) {
		return ErrPatternOutOfRange
	}
	for p := range m.tiles {
		if p != tileIdx {
			m.wfc.Collapse(cell, p)
		}
	}
	return nil
}

// Execute runs one synthesis attempt with the given seed.
func (m *ImageMosaic) Execute(seed int) (image.Grid, bool, error) {
	m.wfc.Init()
	indices, ok := m.wfc.Execute(seed)
	if !ok {
		return image.Grid{}, false, nil
	}
	out, err := m.toImage(indices)
	if err != nil {
		return image.Grid{}, false, err
	}
	return out, true, nil
}

// toImage blits each solved cell's tile image into its position in the output.
func (m *ImageMosaic) toImage(solved *grid.Array2D[int]) (image.Grid, error) {
	tileSize := m.tiles[0].Image.Height()
	height := m.opts.OutSize.I * tileSize
	width := m.opts.OutSize.J * tileSize

	out, err := image.NewGrid(height, width)
	if err != nil {
		return image.Grid{}, err
	}

	for i := 0; i < m.opts.OutSize.I; i++ {
		for j := 0; j < m.opts.OutSize.J; j++ {
			tile := m.tiles[solved.Get(i, j)].Image
			for dy := 0; dy < tileSize; dy++ {
				for dx := 0; dx < tileSize; dx++ {
					out.Set(i*tileSize+dy, j*tileSize+dx, tile.Get(dy, dx))
				}
			}
		}
	}
	return out, nil
}
