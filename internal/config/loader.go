package config

import "github.com/arcflux/wfc/image"

// ImageLoader loads a tile artwork PNG given its filesystem path. cmd/wfc
// supplies one backed by os.Open + internal/imageio.Decode; tests supply an
// in-memory stub.
type ImageLoader func(path string) (image.Grid, error)
