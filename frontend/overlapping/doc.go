// Package overlapping implements the Overlapping front end: it slides an
// NxN window across a sample image, extracts and deduplicates every
// distinct (oriented) window as a pattern, derives adjacency from pixel
// overlap agreement, and hands that to solver.Solver.
//
// What:
//
//   - Pattern extraction: periodic or edge-stopping window scan, expanded
//     by the first Symmetry orientations in the canonical transform order.
//   - Adjacency: patterns p1, p2 are compatible in direction d iff
//     overlapping their NxN pixel grids at d's offset agrees everywhere the
//     windows overlap.
//   - Ground preconditioning: pins a designated "floor" pattern along the
//     output's bottom row.
//
// Determinism: patterns are indexed in insertion order during the single
// canonical sliding-window scan (see extractPatternsAndWeights), so two runs over the
// same sample with the same options produce the same pattern indexing
// regardless of map iteration order.
package overlapping
