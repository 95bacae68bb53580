package simpletiled

import (
	"github.com/arcflux/wfc/grid"
	"github.com/arcflux/wfc/image"
)

// Tile is one named tile: its full dihedral orbit of oriented images (as
// dictated by its Symmetry class), and its relative selection weight.
type Tile struct {
	Name     string
	Images   []image.Grid
	Symmetry image.Symmetry
	Weight   float64
}

// NewTile builds a Tile by expanding a single base image across symmetry's
// declared orbit. Use this for the common case of one artwork per tile.
func NewTile(name string, base image.Grid, symmetry image.Symmetry, weight float64) (Tile, error) {
	images, err := symmetry.GenerateOrientations(base)
	if err != nil {
		return Tile{}, err
	}
	return Tile{Name: name, Images: images, Symmetry: symmetry, Weight: weight}, nil
}

// NeighborRule declares that tile LeftTile in orientation LeftOrientation
// may sit directly left of tile RightTile in orientation RightOrientation.
// generatePropagator expands this single declaration across all eight
// dihedral actions and both propagation directions it implies.
type NeighborRule struct {
	LeftTile         int
	LeftOrientation  int
	RightTile        int
	RightOrientation int
}

// patternIndex identifies one flattened (tile, orientation) pattern.
type patternIndex struct {
	tileIndex  int
	imageIndex int
}

// Options configures a SimpleTiled synthesis.
type Options struct {
	// PeriodicOutput wraps the propagator across the output's edges.
	PeriodicOutput bool
	// OutSize is the output's (height, width) in tiles.
	OutSize grid.Vec2
}
