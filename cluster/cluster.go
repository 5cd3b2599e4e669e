package cluster

import (
	"context"
	"fmt"

	"github.com/katalvlaran/unibic/core"
	"github.com/katalvlaran/unibic/lcs"
)

// fastAdmissionRows is the row count above which seed admission uses
// the used-rows set instead of the per-block overlap check.
const fastAdmissionRows = 250

// minBlockRows and minBlockCols are the emission minima for a grown
// block.
const (
	minBlockRows = 5
	minBlockCols = 4
)

// Cluster consumes the sorted seed list and returns the ranked,
// overlap-filtered biclusters of the rank/discrete matrix pair.
//
// Inputs:
//
//   - rank — the r×c rank matrix (per-row column permutations); the
//     source of all LCS ordering evidence.
//   - disc — the r×c discrete matrix (signed levels); the source of
//     shared-regulation support in the reverse phase.
//   - seeds — (a, b, len) triples sorted by len descending, as
//     produced by lcs.CalculateLCS.
//
// Validation (in order):
//  1. Both matrices must be non-empty, rectangular, and agree on
//     shape (core.ErrEmptyInput, core.ErrDimensionMismatch).
//  2. The seed arrays must agree in length and reference rows inside
//     [0, r) with a < b (core.ErrDimensionMismatch).
//
// The context is consulted once per seed; a cancelled context aborts
// with ctx.Err() and no partial output.
//
// Complexity: O(S·r·c²) time for S admitted seeds, O(r·c) space per
// seed for the tag cache.
func Cluster(ctx context.Context, rank, disc [][]int, seeds lcs.Seeds, p core.Params) (Result, error) {
	rows, cols, err := core.ValidateIntMatrix(rank)
	if err != nil {
		return Result{}, err
	}
	dr, dc, err := core.ValidateIntMatrix(disc)
	if err != nil {
		return Result{}, err
	}
	if dr != rows || dc != cols {
		return Result{}, fmt.Errorf("%w: rank %d×%d vs discrete %d×%d", core.ErrDimensionMismatch, rows, cols, dr, dc)
	}
	if err = seeds.Validate(); err != nil {
		return Result{}, err
	}
	var i int
	for i = 0; i < seeds.Count(); i++ {
		if seeds.A[i] < 0 || seeds.B[i] >= rows || seeds.A[i] >= seeds.B[i] {
			return Result{}, fmt.Errorf("%w: seed %d references pair (%d,%d) outside %d rows", core.ErrDimensionMismatch, i, seeds.A[i], seeds.B[i], rows)
		}
	}
	d, err := p.Derive(rows, cols)
	if err != nil {
		return Result{}, err
	}

	eng := &engine{
		rank:   rank,
		disc:   disc,
		params: d,
		rows:   rows,
		cols:   cols,
		used:   make(map[int]bool, rows),
	}

	var res Result
	for i = 0; i < seeds.Count(); i++ {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}

		a, b := seeds.A[i], seeds.B[i]
		if !eng.admitSeed(a, b) {
			res.Rejected++
			continue
		}

		blk, ok := eng.expand(a, b, seeds.Len[i])
		if !ok {
			res.Undersized++
			continue
		}
		eng.blocks = append(eng.blocks, blk)
		var k int
		for k = 0; k < blk.BlockRowsPre; k++ {
			eng.used[blk.Genes[k]] = true
		}

		if len(eng.blocks) == d.SchBlock {
			break
		}
	}

	postprocess(eng.blocks, d, rows, cols, &res)

	return res, nil
}

// engine is the per-run expansion state.
type engine struct {
	rank   [][]int
	disc   [][]int
	params core.Params
	rows   int
	cols   int

	used   map[int]bool // rows already covered by accepted blocks
	blocks []Block      // accepted candidates awaiting post-processing
}

// admitSeed decides whether the pair (a, b) may start a new block.
//
// Above fastAdmissionRows the check is membership in the used-rows
// set: skip only when both rows are covered already. At or below it,
// the pair is admitted iff it overlaps every existing block in fewer
// than ColWidth−1 rows.
func (e *engine) admitSeed(a, b int) bool {
	if e.rows > fastAdmissionRows {
		return !(e.used[a] && e.used[b])
	}

	var bi int
	for bi = range e.blocks {
		overlap := 0
		var g int
		for _, g = range e.blocks[bi].Genes {
			if g == a || g == b {
				overlap++
			}
		}
		if overlap >= e.params.ColWidth-1 {
			return false
		}
	}

	return true
}
