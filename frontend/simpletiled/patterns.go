package simpletiled

import (
	"github.com/arcflux/wfc/grid"
	"github.com/arcflux/wfc/image"
	"github.com/arcflux/wfc/propagator"
)

// generatePatterns flattens tiles into one patternIndex per (tile,
// orientation) pair, in tile order then orientation order.
func generatePatterns(tiles []Tile) []patternIndex {
	var patterns []patternIndex
	for i, t := range tiles {
		for j := range t.Images {
			patterns = append(patterns, patternIndex{tileIndex: i, imageIndex: j})
		}
	}
	return patterns
}

// generatePatternIndices returns, for each tile, the flattened pattern
// index of each of its orientations — the inverse of generatePatterns.
func generatePatternIndices(tiles []Tile) [][]int {
	indices := make([][]int, len(tiles))
	linear := 0
	for i, t := range tiles {
		indices[i] = make([]int, len(t.Images))
		for j := range t.Images {
			indices[i][j] = linear
			linear++
		}
	}
	return indices
}

// computeWeights divides each tile's declared weight evenly across its
// orientation count, so a tile's total selection probability doesn't depend
// on how symmetric its artwork is.
func computeWeights(tiles []Tile) []float64 {
	var weights []float64
	for _, t := range tiles {
		share := t.Weight / float64(len(t.Images))
		for range t.Images {
			weights = append(weights, share)
		}
	}
	return weights
}

// generateActionMap builds an 8 x orientations table: row 0 is identity,
// row 4 is the reflection of row 0, and every other row is the rotation of
// the row above it. This is the dihedral group's standard action table
// (rotate four times, reflect, rotate four more times), used to expand a
// single neighbor rule across every orientation it implies.
func generateActionMap(sym image.Symmetry) [][]int {
	orientations := sym.Orientations()
	rotation := sym.RotationMap()
	reflection := sym.ReflectionMap()

	actions := make([][]int, 8)
	for i := range actions {
		actions[i] = make([]int, orientations)
	}
	for j := 0; j < orientations; j++ {
		actions[0][j] = j
	}
	for i := 1; i < 8; i++ {
		for j := 0; j < orientations; j++ {
			if i == 4 {
				actions[4][j] = reflection[actions[0][j]]
			} else {
				actions[i][j] = rotation[actions[i-1][j]]
			}
		}
	}
	return actions
}

// actionDirections maps each of the 8 dihedral actions applied to a
// "left-of" rule to the propagation direction that rule instance
// expresses, transcribed from the reference implementation's
// generatePropagator (the 8 add(action, dir) calls).
var actionDirections = [8]int{2, 0, 1, 3, 1, 3, 2, 0}

// generatePropagator expands neighbor rules into a full AdjacencyList.
// Every rule implies, for each of the 8 dihedral actions, one compatible
// pattern pair in some direction and its mirror-image pair in the opposite
// direction — so a single declared rule yields up to 16 adjacency entries.
func generatePropagator(tiles []Tile, patterns []patternIndex, patternIndices [][]int, rules []NeighborRule) propagator.AdjacencyList {
	patternCount := len(patterns)
	dense := make([][][]bool, grid.NumDirections)
	for d := range dense {
		dense[d] = make([][]bool, patternCount)
		for i := range dense[d] {
			dense[d][i] = make([]bool, patternCount)
		}
	}

	for _, rule := range rules {
		actions1 := generateActionMap(tiles[rule.LeftTile].Symmetry)
		actions2 := generateActionMap(tiles[rule.RightTile].Symmetry)

		for action := 0; action < 8; action++ {
			dir := actionDirections[action]
			orientation1 := actions1[action][rule.LeftOrientation]
			orientation2 := actions2[action][rule.RightOrientation]
			pattern1 := patternIndices[rule.LeftTile][orientation1]
			pattern2 := patternIndices[rule.RightTile][orientation2]

			dense[dir][pattern1][pattern2] = true
			dense[grid.OppositeDirection[dir]][pattern2][pattern1] = true
		}
	}

	adj := propagator.NewAdjacencyList(patternCount)
	for d := 0; d < grid.NumDirections; d++ {
		for i := 0; i < patternCount; i++ {
			for j := 0; j < patternCount; j++ {
				if dense[d][i][j] {
					adj[d][i] = append(adj[d][i], j)
				}
			}
		}
	}
	return adj
}
