// Package simpletiled implements the SimpleTiled front end: a fixed set of
// named tiles, each with a declared symmetry class, assembled according to
// explicit pairwise neighbor rules rather than pixel-overlap agreement.
//
// What:
//
//   - Pattern generation: each tile expands to Symmetry.Orientations()
//     distinct oriented images; patterns are the flattened (tile,
//     orientation) pairs across all tiles.
//   - Weight: a tile's declared weight is divided evenly across its
//     orientations, so a tile's total selection probability is independent
//     of how symmetric it is.
//   - Adjacency: NeighborRule declares one compatible (left tile,
//     orientation) / (right tile, orientation) pair; generatePropagator
//     expands that single declaration across the dihedral group's eight
//     actions, deriving all 8 rotated/mirrored consequences of the rule and
//     their reverse-direction counterparts.
//   - Rendering: each pattern's full-resolution tile image is blitted into
//     its solved cell.
//
// Why: sample-free tile sets (Circuit, Rooms, Castle in the reference
// implementation) can't derive compatibility from pixel overlap — the rules
// must be authored explicitly.
package simpletiled
