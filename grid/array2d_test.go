package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArray2D_Errors(t *testing.T) {
	_, err := NewArray2D[int](0, 3)
	assert.ErrorIs(t, err, ErrSizeMismatch)

	_, err = NewArray2D[int](3, -1)
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

func TestArray2D_GetSet(t *testing.T) {
	a, err := NewArray2D[int](2, 3)
	require.NoError(t, err)

	a.Set(1, 2, 42)
	assert.Equal(t, 42, a.Get(1, 2))
	assert.Equal(t, 0, a.Get(0, 0))
	assert.Equal(t, 2, a.Rows())
	assert.Equal(t, 3, a.Cols())
}

func TestArray2D_TryGet_OutOfRange(t *testing.T) {
	a, err := NewArray2D[int](2, 2)
	require.NoError(t, err)

	_, err = a.TryGet(2, 0)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = a.TryGet(0, -1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestArray2D_Get_PanicsOutOfRange(t *testing.T) {
	a, err := NewArray2D[int](2, 2)
	require.NoError(t, err)

	assert.Panics(t, func() { a.Get(5, 5) })
}

func TestArray2D_Fill(t *testing.T) {
	a, err := NewArray2D[bool](2, 2)
	require.NoError(t, err)

	a.Fill(true)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.True(t, a.Get(i, j))
		}
	}
}
