package propagator

import "github.com/arcflux/wfc/grid"

// AdjacencyList holds, for direction d and pattern p, the ordered list of
// patterns allowed at the neighbor in direction d when the current cell is
// p. Indexing is AdjacencyList[d][p]. Front ends build this; the solver
// core never constructs one itself. Duplicates within a list are harmless
// but not deduplicated (matching the reference implementation).
type AdjacencyList [grid.NumDirections][][]int

// NewAdjacencyList allocates an AdjacencyList for numPatterns patterns,
// with every per-(direction,pattern) list initially empty.
func NewAdjacencyList(numPatterns int) AdjacencyList {
	var a AdjacencyList
	for d := 0; d < grid.NumDirections; d++ {
		a[d] = make([][]int, numPatterns)
	}
	return a
}
