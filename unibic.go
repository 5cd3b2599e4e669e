// Package unibic — pipeline facade.
//
// Run chains the four exported stages exactly the way a host would:
// discretize → unisort → CalculateLCS → Cluster. Seeds are generated
// from the rank matrix (column-index permutations), while the
// expansion engine consumes both the rank matrix (ordering evidence)
// and the discrete matrix (signed regulation support).
//
// Complexity:
//
//   - Time:  O(r·c log c) encoding + O(r²/(2P) · c²) seed search +
//     O(S · r · c²) expansion, S = number of admitted seeds.
//   - Space: O(r·c) matrices + O(SchBlock) retained seeds.
package unibic

import (
	"context"

	"github.com/katalvlaran/unibic/cluster"
	"github.com/katalvlaran/unibic/core"
	"github.com/katalvlaran/unibic/discretize"
	"github.com/katalvlaran/unibic/lcs"
	"github.com/katalvlaran/unibic/unisort"
)

// Run executes the full biclustering pipeline on the numeric matrix x
// under the given parameters and returns the cluster result.
//
// Preconditions and validation (in order):
//  1. p must be a validated parameter record (core.NewParams).
//  2. x must be a non-empty rectangular matrix (core.ErrEmptyInput,
//     core.ErrDimensionMismatch via the stage validators).
//
// The context is consulted cooperatively between partition blocks of
// the seed search and between seeds of the expansion loop.
func Run(ctx context.Context, x [][]float64, p core.Params) (cluster.Result, error) {
	// 1) Discretize the numeric matrix into signed rank levels.
	d, err := discretize.Discretize(x, p)
	if err != nil {
		return cluster.Result{}, err
	}

	// 2) Encode every row as the permutation of its column indices.
	r, err := unisort.Unisort(x)
	if err != nil {
		return cluster.Result{}, err
	}

	// 3) All-pairs LCS over the rank matrix; keep the top SchBlock seeds.
	seeds, err := lcs.CalculateLCS(ctx, r, p, true)
	if err != nil {
		return cluster.Result{}, err
	}

	// 4) Grow, score, and filter biclusters from the sorted seed list.
	return cluster.Cluster(ctx, r, d, seeds, p)
}
