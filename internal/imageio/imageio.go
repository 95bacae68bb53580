package imageio

import (
	stdimage "image"
	"image/color"
	"image/png"
	"io"

	"github.com/arcflux/wfc/image"
)

// Decode reads a PNG from r and converts it to an image.Grid. Any pixel
// format is accepted; colors are reduced to 8-bit RGB, dropping alpha, the
// same way the reference implementation's stb_image load forces
// STBI_rgb.
func Decode(r io.Reader) (image.Grid, error) {
	src, _, err := stdimage.Decode(r)
	if err != nil {
		return image.Grid{}, err
	}

	bounds := src.Bounds()
	height, width := bounds.Dy(), bounds.Dx()
	grid, err := image.NewGrid(height, width)
	if err != nil {
		return image.Grid{}, err
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			grid.Set(y, x, image.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)})
		}
	}
	return grid, nil
}

// Encode writes g to w as an 8-bit RGB PNG, matching the reference
// implementation's SaveImagePNG.
func Encode(w io.Writer, g image.Grid) error {
	height, width := g.Height(), g.Width()
	out := stdimage.NewRGBA(stdimage.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := g.Get(y, x)
			out.SetRGBA(x, y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xff})
		}
	}
	return png.Encode(w, out)
}
