package simpletiled

import (
	"testing"

	"github.com/arcflux/wfc/grid"
	"github.com/arcflux/wfc/image"
	"github.com/stretchr/testify/require"
)

var (
	red  = image.RGB{R: 255, G: 0, B: 0}
	blue = image.RGB{R: 0, G: 0, B: 255}
)

func solidTileImage(t *testing.T, shade image.RGB) image.Grid {
	t.Helper()
	g, err := image.NewGrid(2, 2)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			g.Set(i, j, shade)
		}
	}
	return g
}

// twoSolidTiles builds a red and a blue fully-symmetric (SymX) tile, each
// compatible with itself in every direction and with the other tile in no
// direction — forcing a checkerboard-free, single-shade-per-run output.
func twoSolidTiles(t *testing.T) []Tile {
	t.Helper()
	redTile, err := NewTile("red", solidTileImage(t, red), image.NewSymmetry(image.SymX), 1)
	require.NoError(t, err)
	blueTile, err := NewTile("blue", solidTileImage(t, blue), image.NewSymmetry(image.SymX), 1)
	require.NoError(t, err)
	return []Tile{redTile, blueTile}
}

func selfAdjacentRules() []NeighborRule {
	return []NeighborRule{
		{LeftTile: 0, LeftOrientation: 0, RightTile: 0, RightOrientation: 0},
		{LeftTile: 1, LeftOrientation: 0, RightTile: 1, RightOrientation: 0},
	}
}

func TestNew_RejectsEmptyTileSet(t *testing.T) {
	_, err := New(nil, nil, Options{OutSize: grid.NewVec2(4, 4)})
	require.ErrorIs(t, err, ErrNoTiles)
}

func TestNew_RejectsMismatchedTileSize(t *testing.T) {
	small, err := image.NewGrid(1, 1)
	require.NoError(t, err)
	smallTile := Tile{Name: "tiny", Images: []image.Grid{small}, Symmetry: image.NewSymmetry(image.SymX), Weight: 1}
	tiles := append(twoSolidTiles(t), smallTile)

	_, err = New(tiles, nil, Options{OutSize: grid.NewVec2(4, 4)})
	require.ErrorIs(t, err, ErrMismatchedTileSize)
}

func TestExecute_SingleShadeOutputWhenTilesAreMutuallyIncompatible(t *testing.T) {
	tiles := twoSolidTiles(t)
	st, err := New(tiles, selfAdjacentRules(), Options{PeriodicOutput: true, OutSize: grid.NewVec2(4, 4)})
	require.NoError(t, err)

	out, ok, err := st.Execute(5)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 8, out.Height())
	require.Equal(t, 8, out.Width())

	want := out.Get(0, 0)
	for i := 0; i < out.Height(); i++ {
		for j := 0; j < out.Width(); j++ {
			require.Equal(t, want, out.Get(i, j))
		}
	}
}

func TestSetTile_PinsResolvedPatternIndex(t *testing.T) {
	tiles := twoSolidTiles(t)
	st, err := New(tiles, selfAdjacentRules(), Options{PeriodicOutput: true, OutSize: grid.NewVec2(4, 4)})
	require.NoError(t, err)

	require.NoError(t, st.SetTile(grid.NewVec2(0, 0), 1, 0))
	st.wfc.Propagate()

	out, ok, err := st.Execute(5)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, blue, out.Get(0, 0))
}

func TestSetTile_RejectsOutOfRangeIndices(t *testing.T) {
	tiles := twoSolidTiles(t)
	st, err := New(tiles, selfAdjacentRules(), Options{PeriodicOutput: true, OutSize: grid.NewVec2(4, 4)})
	require.NoError(t, err)

	require.ErrorIs(t, st.SetTile(grid.NewVec2(0, 0), 9, 0), ErrTileOutOfRange)
	require.ErrorIs(t, st.SetTile(grid.NewVec2(0, 0), 0, 9), ErrOrientationOutOfRange)
}

func TestGenerateActionMap_IdentityRowIsIndexOrder(t *testing.T) {
	actions := generateActionMap(image.NewSymmetry(image.SymF))
	for j := 0; j < 8; j++ {
		require.Equal(t, j, actions[0][j])
	}
}

func TestGenerateActionMap_RowFourIsReflectionOfIdentity(t *testing.T) {
	sym := image.NewSymmetry(image.SymF)
	actions := generateActionMap(sym)
	reflection := sym.ReflectionMap()
	for j := 0; j < sym.Orientations(); j++ {
		require.Equal(t, reflection[j], actions[4][j])
	}
}
