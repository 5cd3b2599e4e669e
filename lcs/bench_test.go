package lcs_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/unibic/core"
	"github.com/katalvlaran/unibic/lcs"
)

// benchPerms builds two fixed random permutations of length n.
func benchPerms(n int) ([]int, []int) {
	rng := rand.New(rand.NewSource(1))

	return rng.Perm(n), rng.Perm(n)
}

// BenchmarkLength measures the rolling-buffer kernel on 100-element
// permutations.
func BenchmarkLength(b *testing.B) {
	x, y := benchPerms(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lcs.Length(x, y)
	}
}

// BenchmarkPairwise measures the full-table kernel on 100-element
// permutations.
func BenchmarkPairwise(b *testing.B) {
	x, y := benchPerms(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lcs.Pairwise(x, y)
	}
}

// BenchmarkCalculateLCS_Heap measures partitioned seed generation with
// bounded-heap retention on a 200×50 rank matrix.
func BenchmarkCalculateLCS_Heap(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	m := make([][]int, 200)
	for i := range m {
		m[i] = rng.Perm(50)
	}
	p, err := core.NewParams()
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = lcs.CalculateLCS(context.Background(), m, p, true); err != nil {
			b.Fatal(err)
		}
	}
}
