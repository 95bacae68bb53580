package simpletiled

import "errors"

// Sentinel errors for the simpletiled front end.
var (
	// ErrNoTiles indicates a SimpleTiled was constructed with an empty tile set.
	ErrNoTiles = errors.New("simpletiled: at least one tile is required")

	// ErrTileOutOfRange indicates SetTile referenced a tile index outside
	// the configured tile set.
	ErrTileOutOfRange = errors.New("simpletiled: tile index out of range")

	// ErrOrientationOutOfRange indicates SetTile referenced an orientation
	// index outside the tile's declared symmetry class's orbit.
	ErrOrientationOutOfRange = errors.New("simpletiled: orientation out of range for tile's symmetry")

	// ErrMismatchedTileSize indicates a tile's image does not have the same
	// square dimensions as the first tile's.
	ErrMismatchedTileSize = errors.New("simpletiled: all tile images must share the same square size")
)
