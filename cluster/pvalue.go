package cluster

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// blockPValue estimates the probability of observing, under a null
// where each column agrees with probability 1/2, an LCS agreement of
// at least lcsLen columns in every one of the components−1 rows besides
// the reference row: the upper binomial tail raised to that row count.
//
// The result is clamped into (0, 1]; a zero tail is floored at the
// smallest positive double so the −100·ln(p) score stays finite.
func blockPValue(cols, lcsLen, components int) float64 {
	if lcsLen <= 0 || components < 2 {
		return 1
	}
	if lcsLen > cols {
		lcsLen = cols
	}

	bin := distuv.Binomial{N: float64(cols), P: 0.5}
	tail := bin.Survival(float64(lcsLen - 1)) // P(X ≥ lcsLen)
	pv := math.Pow(tail, float64(components-1))

	if pv <= 0 {
		pv = math.SmallestNonzeroFloat64
	}
	if pv > 1 {
		pv = 1
	}

	return pv
}
