package wave

import (
	"math"

	"github.com/arcflux/wfc/grid"
)

// Status is the result of scanning the wave for the next cell to collapse.
type Status int

const (
	// StatusFailure means some cell has no possible pattern left.
	StatusFailure Status = iota
	// StatusContinue means at least one uncollapsed cell remains; the argmin
	// cell returned alongside it names one.
	StatusContinue
	// StatusSuccess means every cell has exactly one possible pattern.
	StatusSuccess
)

// RNG is the minimal random source Wave.MinEntropy needs: a uniform float
// in [0,1). solver.Solver supplies its own deterministic implementation so
// that a fixed seed reproduces a fixed sequence of noise draws.
type RNG interface {
	Float64() float64
}

// Wave is the possibility state for one synthesis run: a bitmap B[i,j,p]
// and, per cell, an incrementally maintained Probability record.
type Wave struct {
	size      grid.Vec2
	weights   []float64
	plogp     []float64
	noiseCeil float64

	possible   *grid.Array3D[bool]
	probs      *grid.Array2D[probability]
	impossible bool
}

// New allocates a Wave of the given size over len(weights) patterns.
// weights must already be normalized (Solver does this once at
// construction); ErrEmptyWeights if weights is empty.
func New(size grid.Vec2, weights []float64) (*Wave, error) {
	if len(weights) == 0 {
		return nil, ErrEmptyWeights
	}
	possible, err := grid.NewArray3D[bool](size.I, size.J, len(weights))
	if err != nil {
		return nil, err
	}
	probs, err := grid.NewArray2D[probability](size.I, size.J)
	if err != nil {
		return nil, err
	}
	plogpWeights := plogp(weights)
	w := &Wave{
		size:      size,
		weights:   weights,
		plogp:     plogpWeights,
		noiseCeil: minAbsHalf(plogpWeights),
		possible:  possible,
		probs:     probs,
	}
	w.Init()
	return w, nil
}

// Size returns the wave's (height, width).
func (w *Wave) Size() grid.Vec2 { return w.size }

// NumPatterns returns the number of patterns the wave was built with.
func (w *Wave) NumPatterns() int { return len(w.weights) }

// Impossible reports whether any cell has reached zero remaining
// possibilities since the last Init.
func (w *Wave) Impossible() bool { return w.impossible }

// Init resets B to all-true, Π to the uniform-possibility baseline, and
// clears Impossible.
func (w *Wave) Init() {
	w.possible.Fill(true)
	base := baseProbability(w.weights, w.plogp)
	w.probs.Fill(base)
	w.impossible = false
}

// Get reports whether pattern p is still possible at cell.
func (w *Wave) Get(cell grid.Vec2, p int) bool {
	return w.possible.Get(cell.I, cell.J, p)
}

// Set bans (value=false) or, in principle, restores (value=true) pattern p
// at cell. Only bans occur in practice (the wave is monotone); Set is a
// no-op if the bit already equals value.
func (w *Wave) Set(cell grid.Vec2, p int, value bool) {
	if w.possible.Get(cell.I, cell.J, p) == value {
		return
	}
	w.possible.Set(cell.I, cell.J, p, value)
	prob := w.probs.Get(cell.I, cell.J)
	if value {
		// Restoration never happens on the solver's hot path; undo the ban
		// arithmetic anyway so Π stays consistent if a caller ever does this.
		prob.sum += w.weights[p]
		prob.sumLog = math.Log(prob.sum)
		prob.sumPlogp += w.plogp[p]
		prob.entropy = prob.sumLog - prob.sumPlogp/prob.sum
		prob.remaining++
		w.probs.Set(cell.I, cell.J, prob)
		return
	}

	prob.ban(w.weights[p], w.plogp[p])
	w.probs.Set(cell.I, cell.J, prob)
	if prob.remaining == 0 {
		w.impossible = true
	}
}

// Entropy returns the current entropy at cell.
func (w *Wave) Entropy(cell grid.Vec2) float64 {
	return w.probs.Get(cell.I, cell.J).entropy
}

// Remaining returns the number of still-possible patterns at cell.
func (w *Wave) Remaining(cell grid.Vec2) uint32 {
	return w.probs.Get(cell.I, cell.J).remaining
}

// MinEntropy scans every cell for the minimum-entropy uncollapsed cell,
// breaking ties with noise drawn once per candidate from
// Uniform(0, noiseCeil). noiseCeil is the smallest of the patterns'
// |w*log(w)|/2 values, so it is no larger than any single one of them and
// the noise is small next to the entropy steps a ban produces.
//
// Returns StatusFailure if Impossible, StatusSuccess if every cell has
// remaining==1, else StatusContinue with the argmin cell.
func (w *Wave) MinEntropy(rng RNG) (Status, grid.Vec2) {
	if w.impossible {
		return StatusFailure, grid.Vec2{}
	}

	allCollapsed := true
	min := math.Inf(1)
	var argmin grid.Vec2

	for i := 0; i < w.size.I; i++ {
		for j := 0; j < w.size.J; j++ {
			prob := w.probs.Get(i, j)
			if prob.remaining == 1 {
				continue
			}
			if prob.entropy <= min {
				noise := rng.Float64() * w.noiseCeil
				if prob.entropy+noise < min {
					min = prob.entropy + noise
					allCollapsed = false
					argmin = grid.NewVec2(i, j)
				}
			}
		}
	}
	if allCollapsed {
		return StatusSuccess, grid.Vec2{}
	}
	return StatusContinue, argmin
}

// Weight returns the normalized weight of pattern p.
func (w *Wave) Weight(p int) float64 { return w.weights[p] }
