package imagemosaic

import (
	"testing"

	"github.com/arcflux/wfc/grid"
	"github.com/arcflux/wfc/image"
	"github.com/stretchr/testify/require"
)

var (
	green  = image.RGB{R: 0, G: 255, B: 0}
	yellow = image.RGB{R: 255, G: 255, B: 0}
)

func solidTileImage(t *testing.T, shade image.RGB) image.Grid {
	t.Helper()
	g, err := image.NewGrid(1, 1)
	require.NoError(t, err)
	g.Set(0, 0, shade)
	return g
}

func twoSolidTiles(t *testing.T) []Tile {
	t.Helper()
	return []Tile{
		{Name: "green", Image: solidTileImage(t, green), Weight: 1},
		{Name: "yellow", Image: solidTileImage(t, yellow), Weight: 1},
	}
}

func selfAdjacentTable() AdjacencyTable {
	table := NewAdjacencyTable(2)
	for d := 0; d < grid.NumDirections; d++ {
		table.Allow(d, 0, 0)
		table.Allow(d, 1, 1)
	}
	return table
}

func TestNew_RejectsEmptyTileSet(t *testing.T) {
	_, err := New(nil, NewAdjacencyTable(0), Options{OutSize: grid.NewVec2(4, 4)})
	require.ErrorIs(t, err, ErrNoTiles)
}

func TestNew_RejectsMismatchedTileSize(t *testing.T) {
	oddSized, err := image.NewGrid(2, 2)
	require.NoError(t, err)
	tiles := append(twoSolidTiles(t), Tile{Name: "big", Image: oddSized, Weight: 1})

	_, err = New(tiles, NewAdjacencyTable(3), Options{OutSize: grid.NewVec2(4, 4)})
	require.ErrorIs(t, err, ErrMismatchedTileSize)
}

func TestExecute_SingleShadeOutputWhenTilesAreMutuallyIncompatible(t *testing.T) {
	tiles := twoSolidTiles(t)
	m, err := New(tiles, selfAdjacentTable(), Options{PeriodicOutput: true, OutSize: grid.NewVec2(4, 4)})
	require.NoError(t, err)

	out, ok, err := m.Execute(9)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 4, out.Height())
	require.Equal(t, 4, out.Width())

	want := out.Get(0, 0)
	for i := 0; i < out.Height(); i++ {
		for j := 0; j < out.Width(); j++ {
			require.Equal(t, want, out.Get(i, j))
		}
	}
}

// TestGeneratePropagator_SymmetrizesOneSidedDeclaration exercises the
// one-sided path: only the forward direction is declared, and the reverse
// direction's compatibility is expected to be synthesized anyway.
func TestGeneratePropagator_SymmetrizesOneSidedDeclaration(t *testing.T) {
	tiles := twoSolidTiles(t)
	table := NewAdjacencyTable(2)
	table.Allow(grid.DirRight, 0, 1) // only declares 0 -> 1 to the right

	adj := generatePropagator(tiles, table)

	require.Contains(t, adj[grid.DirRight][0], 1)
	// the opposite direction, from tile 1's perspective, must have been
	// symmetrized in even though it was never declared directly.
	require.Contains(t, adj[grid.DirLeft][1], 0)
}

func TestSetTile_PinsPattern(t *testing.T) {
	tiles := twoSolidTiles(t)
	m, err := New(tiles, selfAdjacentTable(), Options{PeriodicOutput: true, OutSize: grid.NewVec2(4, 4)})
	require.NoError(t, err)

	require.NoError(t, m.SetTile(grid.NewVec2(0, 0), 1))
	m.wfc.Propagate()

	out, ok, err := m.Execute(9)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, yellow, out.Get(0, 0))
}

func TestSetTile_RejectsOutOfRange(t *testing.T) {
	tiles := twoSolidTiles(t)
	m, err := New(tiles, selfAdjacentTable(), Options{PeriodicOutput: true, OutSize: grid.NewVec2(4, 4)})
	require.NoError(t, err)

	require.ErrorIs(t, m.SetTile(grid.NewVec2(0, 0), 9), ErrPatternOutOfRange)
}
