package cluster_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/unibic/cluster"
	"github.com/katalvlaran/unibic/core"
	"github.com/katalvlaran/unibic/discretize"
	"github.com/katalvlaran/unibic/lcs"
	"github.com/katalvlaran/unibic/unisort"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// refPerm is a fixed 16-column permutation used to build fully
// coherent synthetic rows.
var refPerm = []int{5, 2, 11, 0, 8, 14, 3, 9, 1, 12, 6, 15, 4, 10, 7, 13}

// coherentMatrix builds 15 rows × 16 cols: rows 0–9 follow refPerm's
// ascending order, rows 10–14 the exact reverse (negatively
// correlated). Jitter below the level gap keeps every order strict.
func coherentMatrix() [][]float64 {
	x := make([][]float64, 15)
	for r := range x {
		x[r] = make([]float64, 16)
	}
	for r := 0; r < 10; r++ {
		for k := 0; k < 16; k++ {
			x[r][refPerm[k]] = float64(k)*10 + 0.1*float64((r+k)%7)
		}
	}
	for r := 10; r < 15; r++ {
		for k := 0; k < 16; k++ {
			x[r][refPerm[k]] = float64(15-k)*10 + 0.1*float64((r+k)%7)
		}
	}

	return x
}

// pipelineInputs discretizes and rank-encodes x and generates seeds.
func pipelineInputs(t *testing.T, x [][]float64, p core.Params) (rank, disc [][]int, seeds lcs.Seeds) {
	t.Helper()
	disc, err := discretize.Discretize(x, p)
	require.NoError(t, err)
	rank, err = unisort.Unisort(x)
	require.NoError(t, err)
	seeds, err = lcs.CalculateLCS(context.Background(), rank, p, true)
	require.NoError(t, err)

	return rank, disc, seeds
}

// TestCluster_SizeFilter: a 4×3 input can never reach the 5×4 block
// minimum, so every grown candidate is discarded.
func TestCluster_SizeFilter(t *testing.T) {
	p, err := core.NewParams()
	require.NoError(t, err)

	rank := [][]int{{2, 0, 1}, {1, 2, 0}, {0, 1, 2}, {2, 1, 0}}
	disc := [][]int{{1, 0, 2}, {2, 1, 0}, {0, 2, 1}, {1, 2, 0}}
	seeds := lcs.Seeds{
		A:   []int{0, 1, 2, 0, 0, 1},
		B:   []int{3, 2, 3, 2, 1, 3},
		Len: []int{13, 12, 11, 7, 5, 3},
	}

	res, err := cluster.Cluster(context.Background(), rank, disc, seeds, p)
	require.NoError(t, err)
	assert.Zero(t, res.Number)
	assert.Empty(t, res.Blocks)
	assert.Equal(t, 6, res.Undersized)
}

// TestCluster_ReverseRecruitment: the five reversed rows seed the
// block (they share the last partition), then the reverse phase
// recruits all ten ascending rows as negatively-correlated members.
func TestCluster_ReverseRecruitment(t *testing.T) {
	p, err := core.NewParams(core.WithTolerance(0.9), core.WithBlocks(5))
	require.NoError(t, err)

	x := coherentMatrix()
	rank, disc, seeds := pipelineInputs(t, x, p)

	res, err := cluster.Cluster(context.Background(), rank, disc, seeds, p)
	require.NoError(t, err)

	require.Equal(t, 1, res.Number)
	blk := res.Blocks[0]
	assert.Equal(t, 15, blk.BlockRows, "both orientations joined")
	assert.Equal(t, 16, blk.BlockCols)
	assert.Equal(t, 5, blk.BlockRowsPre, "forward phase held only the reversed seeds")
	assert.Greater(t, blk.BlockRows, blk.BlockRowsPre, "reverse phase must recruit rows")
	assert.Equal(t, []int{13, 14, 10, 11, 12, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, blk.Genes)
	assert.Equal(t, 9, res.Rejected, "later seeds overlap the emitted block")
}

// TestCluster_CondsAscending: emitted condition sets are ordered
// ascending (ordered-set semantics).
func TestCluster_CondsAscending(t *testing.T) {
	p, err := core.NewParams(core.WithTolerance(0.9), core.WithBlocks(5))
	require.NoError(t, err)

	rank, disc, seeds := pipelineInputs(t, coherentMatrix(), p)
	res, err := cluster.Cluster(context.Background(), rank, disc, seeds, p)
	require.NoError(t, err)
	require.Positive(t, res.Number)

	for _, blk := range res.Blocks {
		for i := 1; i < len(blk.Conds); i++ {
			assert.Less(t, blk.Conds[i-1], blk.Conds[i])
		}
	}
}

// TestCluster_OverlapFilter: with a wide matrix (ColWidth 4) a second
// seed sharing two rows with the first block passes seed admission,
// regrows the same block, and is dropped by the overlap filter at
// Filter = 0.5.
func TestCluster_OverlapFilter(t *testing.T) {
	const rows, cols = 12, 80
	x := make([][]float64, rows)
	for r := range x {
		x[r] = make([]float64, cols)
	}
	for r := 0; r < 10; r++ {
		for j := 0; j < cols; j++ {
			x[r][j] = float64((j*37)%cols)*10 + 0.1*float64((r+j)%7)
		}
	}
	for r := 10; r < rows; r++ {
		for j := 0; j < cols; j++ {
			x[r][j] = float64((r*131+j*197)%256) / 256 * 500
		}
	}

	p, err := core.NewParams(core.WithTolerance(0.9), core.WithFilter(0.5), core.WithBlocks(5))
	require.NoError(t, err)
	disc, err := discretize.Discretize(x, p)
	require.NoError(t, err)
	rank, err := unisort.Unisort(x)
	require.NoError(t, err)

	seeds := lcs.Seeds{A: []int{0, 2}, B: []int{1, 3}, Len: []int{80, 80}}
	res, err := cluster.Cluster(context.Background(), rank, disc, seeds, p)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Number)
	assert.Equal(t, 1, res.Filtered, "duplicate block must be overlap-filtered")
	assert.Equal(t, 80, res.Blocks[0].BlockCols)
}

// TestCluster_OutputMasks: the boolean masks agree with the emitted
// block membership exactly.
func TestCluster_OutputMasks(t *testing.T) {
	p, err := core.NewParams(core.WithTolerance(0.9), core.WithBlocks(5))
	require.NoError(t, err)

	rank, disc, seeds := pipelineInputs(t, coherentMatrix(), p)
	res, err := cluster.Cluster(context.Background(), rank, disc, seeds, p)
	require.NoError(t, err)
	require.Equal(t, 1, res.Number)

	require.Len(t, res.RowxNumber, 15)
	require.Len(t, res.NumberxCol, 1)

	inGenes := make(map[int]bool)
	for _, g := range res.Blocks[0].Genes {
		inGenes[g] = true
	}
	for g := 0; g < 15; g++ {
		assert.Equal(t, inGenes[g], res.RowxNumber[g][0], "row %d", g)
	}
	inConds := make(map[int]bool)
	for _, c := range res.Blocks[0].Conds {
		inConds[c] = true
	}
	for c := 0; c < 16; c++ {
		assert.Equal(t, inConds[c], res.NumberxCol[0][c], "col %d", c)
	}
}

// TestCluster_Determinism: identical inputs, identical outputs.
func TestCluster_Determinism(t *testing.T) {
	p, err := core.NewParams(core.WithTolerance(0.9), core.WithBlocks(5))
	require.NoError(t, err)

	rank, disc, seeds := pipelineInputs(t, coherentMatrix(), p)
	r1, err := cluster.Cluster(context.Background(), rank, disc, seeds, p)
	require.NoError(t, err)
	r2, err := cluster.Cluster(context.Background(), rank, disc, seeds, p)
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}

// TestCluster_Validation covers the dimension and seed checks.
func TestCluster_Validation(t *testing.T) {
	p, err := core.NewParams()
	require.NoError(t, err)
	rank := [][]int{{0, 1}, {1, 0}}
	disc := [][]int{{1, 2}, {2, 1}}

	_, err = cluster.Cluster(context.Background(), nil, disc, lcs.Seeds{}, p)
	assert.ErrorIs(t, err, core.ErrEmptyInput)

	_, err = cluster.Cluster(context.Background(), rank, [][]int{{1, 2}}, lcs.Seeds{}, p)
	assert.ErrorIs(t, err, core.ErrDimensionMismatch, "matrices disagree on rows")

	bad := lcs.Seeds{A: []int{0}, B: []int{1, 1}, Len: []int{2, 2}}
	_, err = cluster.Cluster(context.Background(), rank, disc, bad, p)
	assert.ErrorIs(t, err, core.ErrDimensionMismatch, "unequal seed arrays")

	oob := lcs.Seeds{A: []int{0}, B: []int{5}, Len: []int{2}}
	_, err = cluster.Cluster(context.Background(), rank, disc, oob, p)
	assert.ErrorIs(t, err, core.ErrDimensionMismatch, "seed row out of range")
}

// TestCluster_EmptySeeds: no seeds, no blocks, no error.
func TestCluster_EmptySeeds(t *testing.T) {
	p, err := core.NewParams()
	require.NoError(t, err)
	rank := [][]int{{0, 1, 2, 3}, {1, 0, 3, 2}}
	disc := [][]int{{1, 2, 3, 4}, {4, 3, 2, 1}}

	res, err := cluster.Cluster(context.Background(), rank, disc, lcs.Seeds{}, p)
	require.NoError(t, err)
	assert.Zero(t, res.Number)
	assert.Equal(t, cluster.Summary{}, res.Info)
}

// TestCluster_Cancellation: a cancelled context aborts before any seed
// is processed.
func TestCluster_Cancellation(t *testing.T) {
	p, err := core.NewParams(core.WithTolerance(0.9), core.WithBlocks(5))
	require.NoError(t, err)
	rank, disc, seeds := pipelineInputs(t, coherentMatrix(), p)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = cluster.Cluster(ctx, rank, disc, seeds, p)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestCluster_Summary: the emitted-block statistics reflect the single
// 15×16 block.
func TestCluster_Summary(t *testing.T) {
	p, err := core.NewParams(core.WithTolerance(0.9), core.WithBlocks(5))
	require.NoError(t, err)

	rank, disc, seeds := pipelineInputs(t, coherentMatrix(), p)
	res, err := cluster.Cluster(context.Background(), rank, disc, seeds, p)
	require.NoError(t, err)
	require.Equal(t, 1, res.Number)

	assert.Equal(t, 240.0, res.Info.MeanScore)
	assert.Equal(t, 240.0, res.Info.MedianScore)
	assert.Equal(t, 15.0, res.Info.MeanRows)
	assert.Equal(t, 16.0, res.Info.MeanCols)
}
