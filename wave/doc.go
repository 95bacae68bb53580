// Package wave holds the possibility state of a synthesis run: for every
// cell, which patterns are still allowed, and a running Shannon-entropy
// summary of that possibility set.
//
// What:
//
//   - B: a per-cell, per-pattern boolean ("pattern p is still possible
//     at cell c"), stored in Wave's possible field as grid.Array3D[bool].
//   - Π: a per-cell probability record (sum, sum_log, sum_plogp,
//     entropy, remaining), stored in Wave's probs field and maintained
//     incrementally on every ban so entropy
//     never needs a full O(patterns) recompute.
//
// Why:
//
//   - MinEntropy must run once per observe step; an incremental entropy
//     update keeps that scan O(cells) instead of O(cells*patterns).
//
// Invariants:
//
//   - B only goes from true to false during a run (the wave is monotone).
//   - Π[c].remaining == count of true bits in B[c,:].
//   - Once any cell's remaining reaches 0, Impossible is set and stays set
//     until the next Init.
//
// Errors:
//
//   - ErrEmptyWeights: constructed with zero patterns.
package wave
