// Package grid provides the fixed-rank multidimensional arrays and the 2D
// integer vector arithmetic that every other package in this module builds
// on: the wave's possibility bitmap, the propagator's compatibility counter,
// and the front ends' pixel grids are all instances of Array2D/Array3D/Array4D.
//
// What:
//
//   - Array2D/Array3D/Array4D[T]: bounds-checked, row-major dense arrays.
//   - Vec2: a 2D integer offset/index with add, subtract, and modulo wrap.
//
// Why:
//
//   - A single bounds-checking discipline for every grid-shaped structure in
//     the solver avoids silent out-of-range corruption in the hot
//     propagation loop.
//   - Vec2.Mod gives periodic (wrap-around) neighbor lookups for free.
//
// Errors:
//
//   - ErrOutOfRange: an index fell outside the array's declared size.
//   - ErrSizeMismatch: a constructor received a non-positive dimension.
package grid
