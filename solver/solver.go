package solver

import (
	"github.com/arcflux/wfc/grid"
	"github.com/arcflux/wfc/propagator"
	"github.com/arcflux/wfc/wave"
)

// State is the solver's lifecycle state.
type State int

const (
	// StateUninitialized is the state before the first Init call.
	StateUninitialized State = iota
	// StateReady follows Init: the wave and propagator are freshly reset.
	StateReady
	// StateRunning is entered on a non-terminal Observe and kept across
	// Propagate until an Observe reports a terminal result or Init resets it.
	StateRunning
	// StateSuccess means every cell has exactly one possible pattern.
	StateSuccess
	// StateFailure means a contradiction was reached.
	StateFailure
)

// Solver is the WFC observe-propagate control loop. It exclusively owns a
// wave.Wave, a propagator.Propagator, and (per Execute call) a
// deterministic RNG; there is no shared mutable state with callers beyond
// what Collapse/Propagate/Execute expose.
type Solver struct {
	weights []float64 // normalized once at construction
	wave    *wave.Wave
	prop    *propagator.Propagator
	rng     *rng
	state   State
}

// New constructs a Solver over size cells with adjacency lists adj and raw
// (unnormalized) pattern weights. weights is copied and normalized to sum
// to 1; ErrZeroWeights if every weight is zero. The solver starts
// StateUninitialized — call Init before Collapse/Observe/Execute.
func New(size grid.Vec2, adj propagator.AdjacencyList, weights []float64, periodic bool) (*Solver, error) {
	normalized, err := normalize(weights)
	if err != nil {
		return nil, err
	}
	w, err := wave.New(size, normalized)
	if err != nil {
		return nil, err
	}
	p, err := propagator.New(size, adj, len(normalized), periodic)
	if err != nil {
		return nil, err
	}
	return &Solver{
		weights: normalized,
		wave:    w,
		prop:    p,
		state:   StateUninitialized,
	}, nil
}

// normalize copies distribution and scales it to sum to 1.
// ErrZeroWeights if the sum is zero.
func normalize(distribution []float64) ([]float64, error) {
	var sum float64
	for _, v := range distribution {
		sum += v
	}
	if sum == 0 {
		return nil, ErrZeroWeights
	}
	out := make([]float64, len(distribution))
	inv := 1 / sum
	for i, v := range distribution {
		out[i] = v * inv
	}
	return out, nil
}

// State reports the solver's current lifecycle state.
func (s *Solver) State() State { return s.state }

// Size returns the wave's (height, width).
func (s *Solver) Size() grid.Vec2 { return s.wave.Size() }

// Init resets the wave to all-possible and the propagator to an empty
// worklist with freshly recomputed compatibility counts, entering
// StateReady. Safe to call at any point, including mid-run, to restart.
func (s *Solver) Init() {
	s.wave.Init()
	s.prop.Init()
	s.state = StateReady
}

// Collapse is a pre-conditioning primitive: if pattern is still possible at
// cell, it bans it and enqueues the ban on the propagator's worklist, but
// does not propagate. Front ends call this to batch several bans (a ground
// row, a pinned cell) before a single Propagate call drains them all.
func (s *Solver) Collapse(cell grid.Vec2, pattern int) {
	if s.wave.Get(cell, pattern) {
		s.wave.Set(cell, pattern, false)
		s.prop.Push(cell, pattern)
	}
}

// Propagate drains the propagator's worklist against the wave. Front ends
// call this after a batch of Collapse calls; Execute calls it internally
// between Observe steps.
func (s *Solver) Propagate() {
	s.prop.Propagate(s.wave)
}

// Observe performs one step of the control loop: find the minimum-entropy
// uncollapsed cell (breaking ties with RNG-seeded noise), weighted-randomly
// choose one of its still-possible patterns, and ban every other pattern
// there. Returns the wave's terminal status unchanged if it is not
// wave.StatusContinue.
func (s *Solver) Observe() wave.Status {
	status, argmin := s.wave.MinEntropy(s.rng)
	switch status {
	case wave.StatusSuccess:
		s.state = StateSuccess
		return status
	case wave.StatusFailure:
		s.state = StateFailure
		return status
	}

	s.state = StateRunning
	chosen := s.choosePattern(argmin)

	for p := 0; p < len(s.weights); p++ {
		if s.wave.Get(argmin, p) && p != chosen {
			s.wave.Set(argmin, p, false)
			s.prop.Push(argmin, p)
		}
	}
	return wave.StatusContinue
}

// choosePattern performs the weighted random draw described in spec.md
// §4.3: walk patterns in index order subtracting weight (for still-possible
// patterns only — an impossible pattern contributes nothing) from a draw in
// Uniform(0, sum-of-possible-weights); the first pattern that drives the
// remainder to <= 0 is chosen. If floating-point drift leaves no pattern
// chosen, the last pattern index is used as a fallback, matching the
// reference implementation exactly (see spec.md §9, Open Question).
func (s *Solver) choosePattern(cell grid.Vec2) int {
	var sum float64
	for p, w := range s.weights {
		if s.wave.Get(cell, p) {
			sum += w
		}
	}

	remaining := s.rng.Float64() * sum
	chosen := len(s.weights) - 1
	for p, w := range s.weights {
		if s.wave.Get(cell, p) {
			remaining -= w
		}
		if remaining <= 0 {
			chosen = p
			break
		}
	}
	return chosen
}

// ToOutput returns, for every cell, the index of its unique remaining
// pattern. Only meaningful immediately after Execute/Observe reports
// wave.StatusSuccess.
func (s *Solver) ToOutput() (*grid.Array2D[int], error) {
	size := s.wave.Size()
	out, err := grid.NewArray2D[int](size.I, size.J)
	if err != nil {
		return nil, err
	}
	for i := 0; i < size.I; i++ {
		for j := 0; j < size.J; j++ {
			cell := grid.NewVec2(i, j)
			for p := 0; p < s.wave.NumPatterns(); p++ {
				if s.wave.Get(cell, p) {
					out.Set(i, j, p)
					break
				}
			}
		}
	}
	return out, nil
}

// Execute seeds a deterministic RNG from seed and runs the observe-propagate
// loop to a terminal state. Returns the solved index grid and true on
// success, or (nil, false) on contradiction — a clean return, not an error:
// contradictions are an expected outcome the caller (typically a retry
// loop) is expected to handle.
func (s *Solver) Execute(seed int) (*grid.Array2D[int], bool) {
	s.rng = newRNG(seed)
	for {
		switch s.Observe() {
		case wave.StatusSuccess:
			out, err := s.ToOutput()
			if err != nil {
				return nil, false
			}
			return out, true
		case wave.StatusFailure:
			return nil, false
		default:
			s.Propagate()
		}
	}
}
