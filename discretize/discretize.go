package discretize

import (
	"math"
	"sort"

	"github.com/katalvlaran/unibic/core"
)

// Discretize encodes the numeric matrix x into signed discrete rank
// levels under the given parameters. The parameter record is derived
// against the matrix shape internally (Divided ⇒ column count when
// unset), so callers may pass a freshly constructed Params.
//
// Returns a new r×c integer matrix; x is never mutated.
//
// Complexity: O(r·c log c + r·c·N), N = effective rank-level count.
func Discretize(x [][]float64, p core.Params) ([][]int, error) {
	rows, cols, err := core.ValidateMatrix(x)
	if err != nil {
		return nil, err
	}
	d, err := p.Derive(rows, cols)
	if err != nil {
		return nil, err
	}

	y := make([][]int, rows)
	scratch := make([]float64, cols)
	var i int
	for i = 0; i < rows; i++ {
		y[i] = make([]int, cols)
		copy(scratch, x[i])
		sort.Float64s(scratch)
		if d.Quantile >= 0.5 {
			discretizeOneSided(x[i], scratch, y[i], d.Divided)
		} else {
			discretizeTwoSided(x[i], scratch, y[i], d.Divided, d.Quantile)
		}
	}

	return y, nil
}

// discretizeOneSided ranks a row against its own upper quantiles only.
// A cell receives the smallest level k whose threshold
// quantile(sorted, 1 − k/N) it reaches; level N always matches (its
// threshold is the row minimum), so no cell stays at zero here.
func discretizeOneSided(row, sorted []float64, out []int, n int) {
	// Precompute the N descending thresholds once per row.
	thr := make([]float64, n)
	var k int
	for k = 1; k <= n; k++ {
		thr[k-1] = quantile(sorted, 1-float64(k)/float64(n))
	}

	var j int
	for j = range row {
		for k = 1; k <= n; k++ {
			if row[j] >= thr[k-1] {
				out[j] = k
				break
			}
		}
	}
}

// discretizeTwoSided ranks a row against both tails. The narrower of
// the two outer quantile gaps is mirrored around the median to place
// the cuts symmetrically, then cells below the lower cut rank against
// the lower tail (negative levels) and cells above the upper cut rank
// against the upper tail (positive levels).
func discretizeTwoSided(row, sorted []float64, out []int, n int, q float64) {
	partOne := quantile(sorted, 1-q)
	partTwo := quantile(sorted, q)
	median := quantile(sorted, 0.5)

	var upper, lower float64
	if partOne-median >= median-partTwo {
		upper = 2*median - partTwo
		lower = partTwo
	} else {
		upper = partOne
		lower = 2*median - partOne
	}

	// Tails of the sorted row; both remain sorted ascending.
	lowTail := sorted[:sort.SearchFloat64s(sorted, lower)]
	highTail := sorted[sort.Search(len(sorted), func(i int) bool { return sorted[i] > upper }):]

	// Precompute tail thresholds: lower levels walk the tail upward,
	// upper levels walk it downward.
	lowThr := make([]float64, n)
	highThr := make([]float64, n)
	var k int
	for k = 1; k <= n; k++ {
		if len(lowTail) > 0 {
			lowThr[k-1] = quantile(lowTail, float64(k)/float64(n))
		}
		if len(highTail) > 0 {
			highThr[k-1] = quantile(highTail, 1-float64(k)/float64(n))
		}
	}

	var j int
	for j = range row {
		if len(lowTail) > 0 && row[j] <= lowThr[n-1] {
			for k = 1; k <= n; k++ {
				if row[j] <= lowThr[k-1] {
					out[j] = -k
					break
				}
			}
			continue
		}
		if len(highTail) > 0 && row[j] >= highThr[n-1] {
			for k = 1; k <= n; k++ {
				if row[j] >= highThr[k-1] {
					out[j] = k
					break
				}
			}
		}
	}
}

// quantile linearly interpolates between the two order statistics
// surrounding continuous position p·(n−1) of the ascending slice v.
// v must be non-empty and sorted.
func quantile(v []float64, p float64) float64 {
	if len(v) == 1 {
		return v[0]
	}
	pos := p * float64(len(v)-1)
	lo := int(math.Floor(pos))
	if lo < 0 {
		lo = 0
	}
	if lo >= len(v)-1 {
		return v[len(v)-1]
	}
	frac := pos - float64(lo)

	return v[lo] + frac*(v[lo+1]-v[lo])
}
