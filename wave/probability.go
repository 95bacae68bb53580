package wave

import "math"

// probability is the per-cell bookkeeping record backing incremental
// Shannon-entropy maintenance. Field names mirror the reference
// implementation's Probability struct (sum, sum_log, sum_plogp, entropy,
// remaining) so the arithmetic below can be checked against it line by
// line.
type probability struct {
	sum       float64
	sumLog    float64
	sumPlogp  float64
	entropy   float64
	remaining uint32
}

// plogp returns p*log(p) for each weight, used both to seed every cell's
// initial entropy and to know how much to subtract from sumPlogp on a ban.
func plogp(weights []float64) []float64 {
	out := make([]float64, len(weights))
	for i, p := range weights {
		out[i] = p * math.Log(p)
	}
	return out
}

// minAbsHalf returns min_p |plogp[p]|/2, the noise ceiling MinEntropy uses
// to break entropy ties without ever reordering genuinely distinct
// entropies (see Wave.MinEntropy).
func minAbsHalf(plogpWeights []float64) float64 {
	m := math.Inf(1)
	for _, v := range plogpWeights {
		half := math.Abs(v) / 2
		if half < m {
			m = half
		}
	}
	return m
}

// baseProbability computes the uniform-possibility record every cell starts
// a run in: all patterns possible, so sum/sum_plogp are just the totals
// over every pattern's weight/plogp.
func baseProbability(weights, plogpWeights []float64) probability {
	var sum, sumPlogp float64
	for i := range weights {
		sum += weights[i]
		sumPlogp += plogpWeights[i]
	}
	sumLog := math.Log(sum)
	return probability{
		sum:       sum,
		sumLog:    sumLog,
		sumPlogp:  sumPlogp,
		entropy:   sumLog - sumPlogp/sum,
		remaining: uint32(len(weights)),
	}
}

// ban updates p in place to reflect pattern weight w and plogp wp being
// removed from the possibility set, matching Wave::set's arithmetic exactly.
func (p *probability) ban(w, wp float64) {
	p.sum -= w
	p.sumLog = math.Log(p.sum)
	p.sumPlogp -= wp
	p.entropy = p.sumLog - p.sumPlogp/p.sum
	p.remaining--
}
