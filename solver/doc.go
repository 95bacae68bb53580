// Package solver implements the observe-propagate control loop (the WFC
// type in spec.md) that ties a wave.Wave and a propagator.Propagator
// together into a synthesis run: normalize weights once, seed a
// deterministic RNG, and alternate collapsing the minimum-entropy cell with
// draining the propagator until success or contradiction.
//
// What:
//
//   - Solver: owns the Wave, Propagator, and per-Execute RNG exclusively;
//     front ends never touch Wave/Propagator directly.
//   - Collapse: a pre-conditioning primitive (ground rows, pinned cells)
//     that bans one pattern without propagating, so front ends can batch
//     several bans before a single Propagate call.
//   - Execute: seeds the RNG and runs the full loop to a terminal state.
//
// State machine: UNINITIALIZED -> READY (after Init) -> RUNNING (between
// Observe and Propagate) -> SUCCESS | FAILURE | READY (on next Init).
//
// Errors:
//
//   - ErrZeroWeights: every pattern weight was zero; cannot normalize.
package solver
