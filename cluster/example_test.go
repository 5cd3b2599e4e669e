package cluster_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/unibic/cluster"
	"github.com/katalvlaran/unibic/core"
	"github.com/katalvlaran/unibic/discretize"
	"github.com/katalvlaran/unibic/lcs"
	"github.com/katalvlaran/unibic/unisort"
)

// ExampleCluster grows one bicluster from five rows sharing the same
// column ordering: the single in-partition seed expands to all five
// rows over all six columns.
func ExampleCluster() {
	base := []float64{4, 3, 1, 2, 5, 8}
	x := make([][]float64, 5)
	for r := range x {
		x[r] = make([]float64, len(base))
		for j := range base {
			x[r][j] = base[j]*10 + 0.1*float64(r)
		}
	}

	p, _ := core.NewParams()
	d, _ := discretize.Discretize(x, p)
	rank, _ := unisort.Unisort(x)
	seeds, _ := lcs.CalculateLCS(context.Background(), rank, p, true)

	res, _ := cluster.Cluster(context.Background(), rank, d, seeds, p)
	fmt.Printf("blocks=%d genes=%v conds=%v score=%.0f\n",
		res.Number, res.Blocks[0].Genes, res.Blocks[0].Conds, res.Blocks[0].Score)
	// Output:
	// blocks=1 genes=[3 4 0 1 2] conds=[0 1 2 3 4 5] score=30
}
