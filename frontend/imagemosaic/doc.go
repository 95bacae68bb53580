// Package imagemosaic implements the ImageMosaic front end: a fixed set of
// weighted tile images assembled according to an explicit, directional
// adjacency table rather than symmetry classes or pixel-overlap agreement.
//
// What:
//
//   - Patterns are tiles directly — no orientation expansion.
//   - Adjacency comes from a caller-supplied directional table: Allow(d,
//     i, j) declares tile i may have tile j as its direction-d neighbor. A
//     one-sided declaration (only one of the two directions given) is
//     accepted and symmetrized, with a logged warning, since rule authors
//     commonly declare only one side of a pair.
//   - Rendering blits each solved cell's tile image directly.
package imagemosaic
