package cluster

import (
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/unibic/core"
)

// postprocess sorts the candidate blocks by score descending (stable,
// so ties keep insertion order), filters overlap against the already
// emitted blocks, and assembles the boolean output masks plus the run
// summary into res.
func postprocess(blocks []Block, p core.Params, rows, cols int, res *Result) {
	sort.SliceStable(blocks, func(i, j int) bool { return blocks[i].Score > blocks[j].Score })

	limit := len(blocks)
	if limit > p.RptBlock {
		limit = p.RptBlock
	}

	emitted := make([]Block, 0, limit)
	var bi int
	for bi = 0; bi < len(blocks) && len(emitted) < limit; bi++ {
		cand := blocks[bi]
		if overlapsAny(cand, emitted, p.Filter) {
			res.Filtered++
			continue
		}
		emitted = append(emitted, cand)
	}

	res.Blocks = emitted
	res.Number = len(emitted)
	res.RowxNumber, res.NumberxCol = assemble(emitted, rows, cols)
	res.Info = summarize(emitted)
}

// overlapsAny reports whether cand overlaps some earlier emitted block
// beyond the filter fraction of cand's own area.
func overlapsAny(cand Block, emitted []Block, filter float64) bool {
	area := filter * float64(cand.BlockRows) * float64(cand.BlockCols)

	var k int
	for k = range emitted {
		interRows := intersectCount(emitted[k].Genes, cand.Genes)
		interCols := intersectCount(emitted[k].Conds, cand.Conds)
		if float64(interRows*interCols) > area {
			return true
		}
	}

	return false
}

// intersectCount returns |a ∩ b| for two index sets.
func intersectCount(a, b []int) int {
	member := make(map[int]bool, len(a))
	var v int
	for _, v = range a {
		member[v] = true
	}
	n := 0
	for _, v = range b {
		if member[v] {
			n++
		}
	}

	return n
}

// assemble builds the two boolean membership masks: rows×K and K×cols.
func assemble(blocks []Block, rows, cols int) (rowByBlock, blockByCol [][]bool) {
	rowByBlock = make([][]bool, rows)
	var i int
	for i = 0; i < rows; i++ {
		rowByBlock[i] = make([]bool, len(blocks))
	}
	blockByCol = make([][]bool, len(blocks))

	var g, j int
	for i = range blocks {
		blockByCol[i] = make([]bool, cols)
		for _, g = range blocks[i].Genes {
			rowByBlock[g][i] = true
		}
		for _, j = range blocks[i].Conds {
			blockByCol[i][j] = true
		}
	}

	return rowByBlock, blockByCol
}

// summarize computes the per-run statistics over the emitted blocks.
// An empty emission yields the zero Summary.
func summarize(blocks []Block) Summary {
	if len(blocks) == 0 {
		return Summary{}
	}

	scores := make(stats.Float64Data, len(blocks))
	heights := make(stats.Float64Data, len(blocks))
	widths := make(stats.Float64Data, len(blocks))
	var i int
	for i = range blocks {
		scores[i] = blocks[i].Score
		heights[i] = float64(blocks[i].BlockRows)
		widths[i] = float64(blocks[i].BlockCols)
	}

	var s Summary
	s.MeanScore, _ = stats.Mean(scores)
	s.MedianScore, _ = stats.Median(scores)
	s.MeanRows, _ = stats.Mean(heights)
	s.MeanCols, _ = stats.Mean(widths)

	return s
}
