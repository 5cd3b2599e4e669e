package lcs

import (
	"container/heap"
	"context"
	"sort"

	"github.com/katalvlaran/unibic/core"
)

// Partitions is the number of contiguous row groups used by the seed
// generator; pairs are enumerated only within a group.
const Partitions = 4

// Seeds holds the retained (a, b, len) triples as parallel arrays,
// sorted by Len descending. For every i: A[i] < B[i], and both rows
// lie in the same partition block.
type Seeds struct {
	A   []int // first row of each pair
	B   []int // second row of each pair, always > A[i]
	Len []int // LCS length of the pair's rank rows
}

// Count returns the number of retained seeds.
func (s Seeds) Count() int { return len(s.A) }

// Validate checks that the three parallel arrays agree in length.
func (s Seeds) Validate() error {
	if len(s.A) != len(s.B) || len(s.A) != len(s.Len) {
		return core.ErrDimensionMismatch
	}

	return nil
}

// triple is one candidate seed during enumeration.
type triple struct {
	a, b, l int
}

// less is the total comparison key (l, a, b) ascending. Totality makes
// both retention modes deterministic.
func less(x, y triple) bool {
	if x.l != y.l {
		return x.l < y.l
	}
	if x.a != y.a {
		return x.a < y.a
	}

	return x.b < y.b
}

// tripleHeap is a min-heap over the (l, a, b) key.
type tripleHeap []triple

func (h tripleHeap) Len() int            { return len(h) }
func (h tripleHeap) Less(i, j int) bool  { return less(h[i], h[j]) }
func (h tripleHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *tripleHeap) Push(x interface{}) { *h = append(*h, x.(triple)) }
func (h *tripleHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]

	return x
}

// CalculateLCS enumerates all unordered row pairs of m within each of
// the P = 4 contiguous partition blocks (the last block absorbs the
// remainder), computes their LCS lengths, and returns the retained
// triples sorted by length descending.
//
// Retention modes:
//
//   - useHeap=true  — a bounded min-heap of capacity SchBlock: insert
//     until full, then replace the minimum whenever a larger triple
//     arrives. Extract-min in reverse yields descending order.
//   - useHeap=false — collect every triple and sort by
//     (len desc, a asc, b asc).
//
// The context is consulted once per outer row; a cancelled context
// aborts with ctx.Err() and no partial output.
//
// Complexity: O(r²/(2P) · c²) time; O(SchBlock) space in heap mode,
// O(r²/(2P)) in sort mode.
//
// TODO: parallelize pair enumeration across partitions; the bounded
// heap is single-owner, so per-partition heaps would need a merge step.
func CalculateLCS(ctx context.Context, m [][]int, p core.Params, useHeap bool) (Seeds, error) {
	rows, cols, err := core.ValidateIntMatrix(m)
	if err != nil {
		return Seeds{}, err
	}
	d, err := p.Derive(rows, cols)
	if err != nil {
		return Seeds{}, err
	}

	step := rows / Partitions

	var h tripleHeap
	var all []triple
	if useHeap {
		h = make(tripleHeap, 0, d.SchBlock)
	}

	var part, i, j, endi, l int
	for part = 0; part < Partitions; part++ {
		endi = (part + 1) * step
		if part == Partitions-1 {
			endi = rows
		}
		for i = part * step; i < endi; i++ {
			select {
			case <-ctx.Done():
				return Seeds{}, ctx.Err()
			default:
			}
			for j = i + 1; j < endi; j++ {
				l = Length(m[i], m[j])
				t := triple{a: i, b: j, l: l}
				if !useHeap {
					all = append(all, t)
					continue
				}
				if h.Len() < d.SchBlock {
					heap.Push(&h, t)
				} else if less(h[0], t) {
					heap.Pop(&h)
					heap.Push(&h, t)
				}
			}
		}
	}

	if useHeap {
		n := h.Len()
		out := newSeeds(n)
		for i = n - 1; i >= 0; i-- {
			t := heap.Pop(&h).(triple)
			out.A[i] = t.a
			out.B[i] = t.b
			out.Len[i] = t.l
		}

		return out, nil
	}

	// Sort mode orders by (len desc, a asc); enumeration order (b asc)
	// survives via stability.
	sort.SliceStable(all, func(x, y int) bool {
		if all[x].l != all[y].l {
			return all[x].l > all[y].l
		}

		return all[x].a < all[y].a
	})
	out := newSeeds(len(all))
	for i = range all {
		out.A[i] = all[i].a
		out.B[i] = all[i].b
		out.Len[i] = all[i].l
	}

	return out, nil
}

// newSeeds allocates the parallel arrays for n seeds.
func newSeeds(n int) Seeds {
	return Seeds{A: make([]int, n), B: make([]int, n), Len: make([]int, n)}
}
