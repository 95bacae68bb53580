package image

import "github.com/arcflux/wfc/grid"

// Grid is a rectangular RGB pixel grid.
//
// Complexity: Get/Set O(1); Rotate/Mirror/SubImage O(height*width).
type Grid struct {
	pixels *grid.Array2D[RGB]
}

// NewGrid allocates a height x width grid, zero-valued (black).
func NewGrid(height, width int) (Grid, error) {
	a, err := grid.NewArray2D[RGB](height, width)
	if err != nil {
		return Grid{}, err
	}
	return Grid{pixels: a}, nil
}

// Height returns the grid's row count.
func (g Grid) Height() int { return g.pixels.Rows() }

// Width returns the grid's column count.
func (g Grid) Width() int { return g.pixels.Cols() }

// Get returns the pixel at (i,j).
func (g Grid) Get(i, j int) RGB { return g.pixels.Get(i, j) }

// Set stores the pixel at (i,j).
func (g Grid) Set(i, j int, p RGB) { g.pixels.Set(i, j, p) }

// Rotate returns a new grid rotated 90 degrees. The source grid must be
// square (pattern windows and tiles always are); ErrNotSquare otherwise.
func (g Grid) Rotate() (Grid, error) {
	if g.Height() != g.Width() {
		return Grid{}, ErrNotSquare
	}
	n := g.Height()
	out, err := NewGrid(n, n)
	if err != nil {
		return Grid{}, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Set(j, i, g.Get(i, n-1-j))
		}
	}
	return out, nil
}

// Mirror returns a new grid reflected horizontally (columns reversed). The
// source grid must be square; ErrNotSquare otherwise.
func (g Grid) Mirror() (Grid, error) {
	if g.Height() != g.Width() {
		return Grid{}, ErrNotSquare
	}
	n := g.Height()
	out, err := NewGrid(n, n)
	if err != nil {
		return Grid{}, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Set(i, j, g.Get(i, n-1-j))
		}
	}
	return out, nil
}

// SubImage extracts a height x width window starting at (i0,j0), wrapping
// around the source grid's edges (used for periodic-input pattern
// extraction; non-periodic callers never request a window past the edge).
func (g Grid) SubImage(i0, j0, height, width int) Grid {
	out, err := NewGrid(height, width)
	if err != nil {
		panic(err)
	}
	srcH, srcW := g.Height(), g.Width()
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			srcI := (i + i0) % srcH
			srcJ := (j + j0) % srcW
			out.Set(i, j, g.Get(srcI, srcJ))
		}
	}
	return out
}

// Equal reports whether g and other have the same dimensions and pixels.
func (g Grid) Equal(other Grid) bool {
	if g.Height() != other.Height() || g.Width() != other.Width() {
		return false
	}
	for i := 0; i < g.Height(); i++ {
		for j := 0; j < g.Width(); j++ {
			if g.Get(i, j) != other.Get(i, j) {
				return false
			}
		}
	}
	return true
}

// Hash returns a hash of g's pixel bytes in row-major order, suitable as a
// map key surrogate for pattern deduplication (see frontend/overlapping).
func (g Grid) Hash() uint32 {
	var h uint32
	for i := 0; i < g.Height(); i++ {
		for j := 0; j < g.Width(); j++ {
			h = hashMix(h, g.Get(i, j))
		}
	}
	return h
}

// Key returns a comparable value suitable as a Go map key that is equal for
// two grids iff Equal reports true (Go maps cannot key on a pointer-backed
// struct directly). Dimensions are folded in so grids of different shape
// never collide.
func (g Grid) Key() string {
	buf := make([]byte, 0, 8+3*g.Height()*g.Width())
	buf = appendInt(buf, g.Height())
	buf = appendInt(buf, g.Width())
	for i := 0; i < g.Height(); i++ {
		for j := 0; j < g.Width(); j++ {
			p := g.Get(i, j)
			buf = append(buf, p.R, p.G, p.B)
		}
	}
	return string(buf)
}

func appendInt(buf []byte, v int) []byte {
	return append(buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
