package solver

// rng is a Park-Miller minimal standard Lehmer generator: the same
// multiplier (48271) and modulus (2^31-1) as C++11's std::minstd_rand,
// chosen so that a fixed seed reproduces a fixed sequence of draws
// regardless of host Go version — unlike math/rand, whose algorithm is not
// specified precisely enough across releases to guarantee that (see
// SPEC_FULL.md §4.3 and DESIGN.md).
type rng struct {
	state int64
}

const (
	lcgModulus    int64 = 2147483647 // 2^31 - 1
	lcgMultiplier int64 = 48271
)

// newRNG seeds the generator from seed. A seed of 0 mod the modulus would
// be a fixed point (every draw would be 0 forever), so it is nudged to 1.
func newRNG(seed int) *rng {
	state := int64(seed) % lcgModulus
	if state < 0 {
		state += lcgModulus
	}
	if state == 0 {
		state = 1
	}
	return &rng{state: state}
}

// next advances the generator and returns the raw state in [1, modulus-1].
func (r *rng) next() int64 {
	r.state = (r.state * lcgMultiplier) % lcgModulus
	return r.state
}

// Float64 returns a uniform draw in [0,1), implementing wave.RNG.
func (r *rng) Float64() float64 {
	return float64(r.next()) / float64(lcgModulus)
}
