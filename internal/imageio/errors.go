package imageio

import "errors"

// ErrUnsupportedColorModel indicates a decoded PNG uses a color model this
// package doesn't convert (anything not reducible to 8-bit RGB).
var ErrUnsupportedColorModel = errors.New("imageio: unsupported PNG color model")
