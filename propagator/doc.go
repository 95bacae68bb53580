// Package propagator implements arc-consistency propagation: given a ban
// (a pattern ruled out at a cell), it removes every neighbor pattern that
// ban leaves unsupported, and recurses until a fixed point (or a
// contradiction) is reached.
//
// What:
//
//   - AdjacencyList: for each (direction, pattern), the list of patterns
//     allowed at the neighbor in that direction.
//   - Propagator.compatible: a 4D compatibility counter C[direction,
//     pattern, i, j] — how many patterns are still possible at the cell
//     that would, via this direction, support `pattern` at (i,j). This is
//     the module's dominant memory cost: 4 * patterns * height * width
//     counters.
//   - A LIFO worklist of (cell, pattern) bans still to propagate.
//
// Why:
//
//   - Counting compatible supporters instead of recomputing compatibility
//     from scratch on every ban turns propagation into O(1) work per
//     (direction, pattern) edge touched, rather than a full rescan.
//
// Invariant (after Propagate returns, assuming no contradiction): for every
// still-possible pair (cell x with pattern p possible, in-bounds neighbor y
// in direction d), some pattern q is possible at y with q in
// AdjacencyList[d][p] — arc-consistency over the four cardinal directions.
package propagator
