package main

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/arcflux/wfc/image"
	"github.com/stretchr/testify/require"
)

func TestRetryExecute_ReturnsFirstSuccess(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	calls := 0
	attempt := func(seed int) (image.Grid, bool, error) {
		calls++
		if calls < 3 {
			return image.Grid{}, false, nil
		}
		g, err := image.NewGrid(1, 1)
		require.NoError(t, err)
		return g, true, nil
	}

	out, _, err := retryExecute(rng, attempt, "job", 0)
	require.NoError(t, err)
	require.Equal(t, 3, calls)
	require.Equal(t, 1, out.Height())
}

func TestRetryExecute_ExhaustsRetries(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	calls := 0
	attempt := func(seed int) (image.Grid, bool, error) {
		calls++
		return image.Grid{}, false, nil
	}

	_, _, err := retryExecute(rng, attempt, "job", 0)
	require.Error(t, err)
	require.Equal(t, maxRetriesPerScreenshot, calls)
}

func TestWriteOutput_WritesPNGFile(t *testing.T) {
	dir := t.TempDir()
	g, err := image.NewGrid(2, 2)
	require.NoError(t, err)

	require.NoError(t, writeOutput(dir, "sample", 42, g))

	_, err = os.Stat(filepath.Join(dir, "sample_42.png"))
	require.NoError(t, err)
}
