package unisort

import (
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/unibic/core"
)

// Unisort returns the rank matrix of x: row i of the result is the
// permutation of {0..c−1} listing column indices of row i in ascending
// value order, stable among ties.
//
// Rows are encoded concurrently (bounded by the CPU count); the output
// is identical to a serial pass because each worker writes only its
// own row.
//
// Complexity: O(r·c log c) time, O(r·c) space.
func Unisort(x [][]float64) ([][]int, error) {
	rows, cols, err := core.ValidateMatrix(x)
	if err != nil {
		return nil, err
	}

	y := make([][]int, rows)

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	var i int
	for i = 0; i < rows; i++ {
		row := x[i]
		out := make([]int, cols)
		y[i] = out
		g.Go(func() error {
			var k int
			for k = range out {
				out[k] = k
			}
			// Stable: equal values keep ascending column order.
			sort.SliceStable(out, func(a, b int) bool { return row[out[a]] < row[out[b]] })

			return nil
		})
	}
	// Workers never fail; Wait only synchronizes completion.
	_ = g.Wait()

	return y, nil
}
