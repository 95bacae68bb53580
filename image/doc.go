// Package image provides the pixel grid and symmetry-class machinery the
// front ends use to turn a sample image or a tile set into oriented pattern
// images.
//
// What:
//
//   - Grid: an RGB pixel grid with Rotate/Mirror/SubImage, backed by
//     grid.Array2D[RGB].
//   - Symmetry: one of {X, I, L, T, \, F}, encoding how many of the eight
//     dihedral orientations of a tile/pattern are distinct, and the
//     permutation maps rotation and reflection induce over them.
//
// Why:
//
//   - Overlapping and SimpleTiled both need to expand a single sample/tile
//     into its full symmetry orbit using the same eight-transform chain; this
//     package is the one place that chain is written down.
//
// PNG decode/encode is deliberately not here: see internal/imageio, which
// is the only package in this module that imports image/png.
package image
