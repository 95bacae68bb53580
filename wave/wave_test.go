package wave

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcflux/wfc/grid"
)

// zeroRNG always returns 0, making MinEntropy's noise draw a no-op; useful
// for tests that want exact entropy comparisons.
type zeroRNG struct{}

func (zeroRNG) Float64() float64 { return 0 }

func TestNew_RejectsEmptyWeights(t *testing.T) {
	_, err := New(grid.NewVec2(1, 1), nil)
	assert.ErrorIs(t, err, ErrEmptyWeights)
}

func TestWave_InitialEntropyIsLogN(t *testing.T) {
	w, err := New(grid.NewVec2(2, 2), []float64{0.5, 0.5})
	require.NoError(t, err)

	want := math.Log(2)
	got := w.Entropy(grid.NewVec2(0, 0))
	assert.InDelta(t, want, got, 1e-9)
	assert.EqualValues(t, 2, w.Remaining(grid.NewVec2(0, 0)))
}

// TestWave_SetBan_S1 reproduces spec scenario S1: banning one of two equally
// weighted patterns at a cell collapses that cell's entropy to 0 while
// every other cell keeps both possibilities.
func TestWave_SetBan_S1(t *testing.T) {
	w, err := New(grid.NewVec2(2, 2), []float64{0.5, 0.5})
	require.NoError(t, err)

	cell := grid.NewVec2(0, 0)
	w.Set(cell, 1, false)

	assert.False(t, w.Get(cell, 1))
	assert.True(t, w.Get(cell, 0))
	assert.InDelta(t, 0, w.Entropy(cell), 1e-9)
	assert.EqualValues(t, 1, w.Remaining(cell))

	other := grid.NewVec2(1, 1)
	assert.True(t, w.Get(other, 0))
	assert.True(t, w.Get(other, 1))
	assert.InDelta(t, math.Log(2), w.Entropy(other), 1e-9)
}

func TestWave_Set_Idempotent(t *testing.T) {
	w, err := New(grid.NewVec2(1, 1), []float64{1, 1, 1})
	require.NoError(t, err)
	cell := grid.NewVec2(0, 0)

	w.Set(cell, 0, false)
	before := w.Entropy(cell)
	w.Set(cell, 0, false) // already false: must be a no-op
	assert.Equal(t, before, w.Entropy(cell))
	assert.EqualValues(t, 2, w.Remaining(cell))
}

func TestWave_ImpossibleOnLastBan(t *testing.T) {
	w, err := New(grid.NewVec2(1, 1), []float64{1, 1})
	require.NoError(t, err)
	cell := grid.NewVec2(0, 0)

	w.Set(cell, 0, false)
	assert.False(t, w.Impossible())
	w.Set(cell, 1, false)
	assert.True(t, w.Impossible())
}

func TestWave_MinEntropy_SkipsCollapsedAndReportsStatus(t *testing.T) {
	w, err := New(grid.NewVec2(1, 2), []float64{1, 1})
	require.NoError(t, err)

	// Collapse cell (0,0) fully.
	w.Set(grid.NewVec2(0, 0), 1, false)

	status, argmin := w.MinEntropy(zeroRNG{})
	assert.Equal(t, StatusContinue, status)
	assert.Equal(t, grid.NewVec2(0, 1), argmin)

	// Collapse the remaining cell too.
	w.Set(grid.NewVec2(0, 1), 1, false)
	status, _ = w.MinEntropy(zeroRNG{})
	assert.Equal(t, StatusSuccess, status)
}

func TestWave_MinEntropy_FailureWhenImpossible(t *testing.T) {
	w, err := New(grid.NewVec2(1, 1), []float64{1, 1})
	require.NoError(t, err)
	cell := grid.NewVec2(0, 0)
	w.Set(cell, 0, false)
	w.Set(cell, 1, false)

	status, _ := w.MinEntropy(zeroRNG{})
	assert.Equal(t, StatusFailure, status)
}

func TestWave_Init_ResetsToConstructionState(t *testing.T) {
	w, err := New(grid.NewVec2(2, 2), []float64{0.25, 0.75})
	require.NoError(t, err)
	cell := grid.NewVec2(0, 0)
	w.Set(cell, 0, false)
	require.EqualValues(t, 1, w.Remaining(cell))

	w.Init()
	assert.False(t, w.Impossible())
	assert.EqualValues(t, 2, w.Remaining(cell))
	assert.True(t, w.Get(cell, 0))
}
