package imagemosaic

import "errors"

// Sentinel errors for the imagemosaic front end.
var (
	// ErrNoTiles indicates an ImageMosaic was constructed with an empty tile set.
	ErrNoTiles = errors.New("imagemosaic: at least one tile is required")

	// ErrMismatchedTileSize indicates tile images aren't all the same square size.
	ErrMismatchedTileSize = errors.New("imagemosaic: all tile images must share the same square size")

	// ErrPatternOutOfRange indicates SetTile referenced a tile index outside the tile set.
	ErrPatternOutOfRange = errors.New("imagemosaic: pattern index out of range")
)
