// Package unibic is an in-memory biclustering engine for numeric data
// matrices — from row discretization to ranked, overlap-filtered
// biclusters.
//
// 🚀 What is unibic?
//
//	A deterministic, pure-Go implementation of LCS-driven biclustering
//	for real-valued matrices (rows = objects such as genes, columns =
//	conditions such as samples). The pipeline:
//		• Discretization: per-row quantile encoding into signed ranks
//		• Rank encoding:  per-row column permutations (stable order)
//		• Seed search:    all-pairs Longest Common Subsequence with
//		                  partitioned enumeration and bounded-heap top-K
//		• Expansion:      seed-driven two-phase growth (forward, then
//		                  reverse polarity) with column-statistics upkeep
//		• Post-process:   score sort + overlap filtering → boolean masks
//
// ✨ Why choose unibic?
//
//   - Deterministic – fixed traversal order, total comparison keys,
//     identical output for identical input and parameters
//   - Bounded memory – top-K seed retention via a capped min-heap
//   - Parallel where safe – row-parallel regions only; every mutating
//     loop stays serial and ordered
//   - Pure Go numeric core – gonum for the p-value hook, nothing hidden
//
// Everything is organized under five subpackages plus this facade:
//
//	core/       — run parameters (options, validation, derived limits)
//	discretize/ — quantile discretizer (one-sided and two-sided regimes)
//	unisort/    — row-rank encoder (stable, row-parallel)
//	lcs/        — LCS kernel + all-pairs seed generator
//	cluster/    — expansion engine, post-processor, output assembler
//
// Quick start:
//
//	p, err := core.NewParams(core.WithTolerance(0.85), core.WithBlocks(100))
//	if err != nil { ... }
//	res, err := unibic.Run(context.Background(), data, p)
//	if err != nil { ... }
//	fmt.Println(res.Number, "biclusters")
//
// See the Example functions of each package and run_test.go for
// end-to-end scenarios.
package unibic
