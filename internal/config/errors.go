package config

import "errors"

// Sentinel errors for the config package.
var (
	// ErrMissingRoot indicates a samples file has no top-level <samples> element.
	ErrMissingRoot = errors.New("config: missing <samples> root element")

	// ErrMissingRulesRoot indicates a rules file has no top-level <set> element.
	ErrMissingRulesRoot = errors.New("config: missing <set> root element")

	// ErrUnknownTileReference indicates a neighbor rule references a tile
	// name absent from the rules file's <tiles> block.
	ErrUnknownTileReference = errors.New("config: neighbor references unknown tile name")

	// ErrMissingTileImage indicates a declared tile has no orientation images
	// discoverable under the expected path.
	ErrMissingTileImage = errors.New("config: tile declares no loadable image")
)
