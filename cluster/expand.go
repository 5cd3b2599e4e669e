package cluster

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/unibic/lcs"
)

// expand grows the seed (a, b, seedLen) into a bicluster. The second
// return is false when the grown block falls below the 5×4 minimum.
//
// Phases (serial admission, ascending row order throughout):
//
//	init → trace truncation → column seeding → forward growth →
//	reverse growth → finalize.
func (e *engine) expand(a, b, seedLen int) (Block, bool) {
	// Per-seed cache: LCS length and column tag-set of every row
	// against the seed's reference row. Read-only after this point;
	// computed row-parallel into disjoint slots.
	lens := make([]int, e.rows)
	tags := make([][]bool, e.rows)
	e.parallelRows(func(k int) {
		lens[k] = lcs.Length(e.rank[a], e.rank[k])
		tags[k] = lcs.Tags(e.rank[a], e.rank[k], e.cols)
	})

	st := &growState{
		genes:      []int{a, b},
		score:      math.Min(2, float64(seedLen)),
		pvalue:     1,
		trace:      []float64{1},
		pvals:      []float64{1, 1},
		candidates: make([]bool, e.rows),
		components: 2,
	}
	st.trace = append(st.trace, st.score)
	var k int
	for k = 0; k < e.rows; k++ {
		st.candidates[k] = true
	}
	st.candidates[a], st.candidates[b] = false, false

	// 1) Greedy init expansion against the seed reference.
	candThreshold := int(math.Floor(float64(e.params.ColWidth) * e.params.Tolerance))
	if candThreshold < 2 {
		candThreshold = 2
	}
	e.blockInit(st, lens, candThreshold)

	// 2) Trace truncation: keep the prefix achieving the best score.
	e.truncate(st)

	// 3) Column seeding from the kept rows' tag consensus.
	colStat := make([]int, e.cols)
	var i, j int
	for i = 1; i < st.components; i++ {
		for j = 0; j < e.cols; j++ {
			if tags[st.genes[i]][j] {
				colStat[j]++
			}
		}
	}
	colThreshold := int(math.Floor(float64(st.components)*0.7)) - 1
	if colThreshold < 1 {
		colThreshold = 1
	}
	var colcand []int
	for j = 0; j < e.cols; j++ {
		if colStat[j] >= colThreshold {
			colcand = append(colcand, j)
		}
	}
	cnt := len(colcand)

	// Reset candidates for the growth phases.
	for k = 0; k < e.rows; k++ {
		st.candidates[k] = true
	}
	for _, k = range st.genes {
		st.candidates[k] = false
	}

	// 4) Forward growth: recruit rows agreeing with the candidate
	// columns. Tag-overlap counts are read-only and row-parallel;
	// admission stays serial and ascending.
	mct := make([]int, e.rows)
	e.parallelRows(func(row int) {
		var t int
		for _, t = range colcand {
			if tags[row][t] {
				mct[row]++
			}
		}
	})
	e.grow(st, colcand, colStat, tags, mct, cnt)
	pre := st.components

	// 5) Reverse growth: re-tag remaining rows against the seed pair's
	// mask with reversed orientation, then admit under the same rules.
	mask := tags[st.genes[1]]
	g1 := filterByMask(e.rank[st.genes[0]], mask)
	reveTags := make([][]bool, e.rows)
	common := make([]int, e.rows)
	rmct := make([]int, e.rows)
	refDisc := e.disc[st.genes[0]]
	e.parallelRows(func(row int) {
		if !st.candidates[row] {
			return
		}
		var i int
		for i = 0; i < e.cols; i++ {
			if refDisc[i]*e.disc[row][i] != 0 {
				common[row]++
			}
		}
		g2 := filterByMask(e.rank[row], mask)
		reverseInts(g2)
		reveTags[row] = lcs.Tags(g1, g2, e.cols)
		var t int
		for _, t = range colcand {
			if reveTags[row][t] {
				rmct[row]++
			}
		}
	})
	supportThreshold := int(math.Floor(float64(cnt) * e.params.Tolerance))
	for k = 0; k < e.rows; k++ {
		if !st.candidates[k] {
			continue
		}
		if common[k] < supportThreshold {
			st.candidates[k] = false
		}
	}
	e.grow(st, colcand, colStat, reveTags, rmct, cnt)

	// 6) Finalize.
	if cnt < minBlockCols || st.components < minBlockRows {
		return Block{}, false
	}

	blk := Block{
		Genes:        append([]int(nil), st.genes...),
		Conds:        append([]int(nil), colcand...),
		PValue:       st.pvalue,
		BlockRows:    st.components,
		BlockCols:    cnt,
		BlockRowsPre: pre,
	}
	if e.params.IsPValue {
		blk.Score = -100 * math.Log(st.pvalue)
	} else {
		blk.Score = float64(blk.BlockRows * blk.BlockCols)
	}

	return blk, true
}

// growState is the mutable per-seed expansion state.
type growState struct {
	genes      []int     // admitted rows, seed pair first
	score      float64   // running best trace score
	pvalue     float64   // running best (smallest) block p-value
	trace      []float64 // score trace, one entry per admitted row
	pvals      []float64 // p-value trace parallel to trace
	candidates []bool    // rows still admissible
	components int       // committed row count
}

// blockInit greedily extends the gene set by the candidate row with
// the maximum cached LCS length, ties broken by ascending row index,
// until no candidate reaches the threshold.
//
// Each admission appends min(components, length) to the score trace —
// the balance of block height against shared ordering length — and
// lifts the running best score; under the p-value hook the block
// p-value is recomputed as the running minimum.
func (e *engine) blockInit(st *growState, lens []int, threshold int) {
	for {
		best, bestLen := -1, threshold-1
		var k int
		for k = 0; k < e.rows; k++ {
			if st.candidates[k] && lens[k] > bestLen {
				best, bestLen = k, lens[k]
			}
		}
		if best < 0 {
			return
		}

		st.genes = append(st.genes, best)
		st.candidates[best] = false
		st.components++

		score := math.Min(float64(st.components), float64(bestLen))
		if score > st.score {
			st.score = score
		}
		st.trace = append(st.trace, score)

		pv := 1.0
		if e.params.IsPValue {
			pv = blockPValue(e.cols, bestLen, st.components)
			if pv < st.pvalue {
				st.pvalue = pv
			}
		}
		st.pvals = append(st.pvals, pv)
	}
}

// truncate cuts the gene list back to the prefix that achieved the
// best trace score (or, under the p-value hook, the best p-value at a
// score step).
func (e *engine) truncate(st *growState) {
	at := func(i int) float64 {
		if i < len(st.trace) {
			return st.trace[i]
		}

		return math.Inf(-1)
	}

	var k int
	for k = 0; k < st.components; k++ {
		if e.params.IsPValue && k >= 2 && st.pvals[k] == st.pvalue && st.trace[k] != at(k+1) {
			break
		}
		if st.trace[k] == st.score && at(k+1) != st.score {
			break
		}
	}
	st.components = k + 1
	if st.components > len(st.genes) {
		st.components = len(st.genes)
	}
	st.genes = st.genes[:st.components]
}

// grow runs one serial admission pass (ascending row order) over the
// remaining candidates: a row joins when its tag overlap with the
// candidate columns meets the tolerance and no candidate column's
// statistic would fall below the floor.
func (e *engine) grow(st *growState, colcand []int, colStat []int, rowTags [][]bool, overlap []int, cnt int) {
	admitThreshold := int(math.Floor(float64(cnt)*e.params.Tolerance)) - 1

	var k, t int
	for k = 0; k < e.rows; k++ {
		if !st.candidates[k] || rowTags[k] == nil || overlap[k] < admitThreshold {
			continue
		}

		colFloor := int(math.Floor(float64(st.components)*0.1)) - 1
		colChose := true
		for _, t = range colcand {
			tmp := colStat[t]
			if rowTags[k][t] {
				tmp++
			}
			if tmp < colFloor {
				colChose = false
				break
			}
		}
		if !colChose {
			continue
		}

		st.genes = append(st.genes, k)
		st.components++
		st.candidates[k] = false
		for _, t = range colcand {
			if rowTags[k][t] {
				colStat[t]++
			}
		}
	}
}

// parallelRows applies fn to every row index in [0, rows), fanned out
// over CPU-bounded chunks. fn must write only to its own row's slots.
func (e *engine) parallelRows(fn func(row int)) {
	workers := runtime.NumCPU()
	if workers > e.rows {
		workers = e.rows
	}
	chunk := (e.rows + workers - 1) / workers

	var g errgroup.Group
	var lo int
	for lo = 0; lo < e.rows; lo += chunk {
		hi := lo + chunk
		if hi > e.rows {
			hi = e.rows
		}
		start, end := lo, hi
		g.Go(func() error {
			var k int
			for k = start; k < end; k++ {
				fn(k)
			}

			return nil
		})
	}
	_ = g.Wait()
}

// filterByMask returns the subsequence of seq whose elements are
// marked in mask, preserving order. Elements outside the mask's range
// are dropped.
func filterByMask(seq []int, mask []bool) []int {
	out := make([]int, 0, len(seq))
	var v int
	for _, v = range seq {
		if v >= 0 && v < len(mask) && mask[v] {
			out = append(out, v)
		}
	}

	return out
}

// reverseInts reverses s in place.
func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
