package imagemosaic

import (
	"github.com/arcflux/wfc/grid"
	"github.com/arcflux/wfc/image"
)

// Tile is one weighted mosaic tile image.
type Tile struct {
	Name   string
	Image  image.Grid
	Weight float64
}

// AdjacencyTable is a dense, directional tile-compatibility declaration:
// table[d][i][j] means tile i may have tile j as its direction-d
// neighbor. Rule authors commonly declare only one side of a pair (see
// generatePropagator); NewAdjacencyTable pre-sizes all four direction
// planes to numTiles x numTiles, false.
type AdjacencyTable [grid.NumDirections][][]bool

// NewAdjacencyTable allocates an all-false table for numTiles tiles.
func NewAdjacencyTable(numTiles int) AdjacencyTable {
	var table AdjacencyTable
	for d := range table {
		table[d] = make([][]bool, numTiles)
		for i := range table[d] {
			table[d][i] = make([]bool, numTiles)
		}
	}
	return table
}

// Allow declares tile i may have tile j as its direction-d neighbor.
func (t AdjacencyTable) Allow(d, i, j int) {
	t[d][i][j] = true
}

// Options configures an ImageMosaic synthesis.
type Options struct {
	// PeriodicOutput wraps the propagator across the output's edges.
	PeriodicOutput bool
	// OutSize is the output's (height, width) in tiles.
	OutSize grid.Vec2
}
