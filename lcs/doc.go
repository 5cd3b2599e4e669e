// Package lcs provides the Longest Common Subsequence kernel and the
// all-pairs seed generator of the unibic pipeline.
//
// 🚀 What is in the kernel?
//
//	• Pairwise  — the classic DP table: C[i][j] holds the LCS length
//	  of x[:i] and y[:j]; the full table enables backtracking.
//	• Backtrack — one optimal subsequence recovered from the table
//	  corner; on DP ties the walk steps up (deterministic choice).
//	• Length    — table-corner length only, with a two-row rolling
//	  buffer (O(min allocation) for the hot all-pairs loop).
//	• Tags      — the column tag-set of one LCS between two rank
//	  rows: a boolean mask over the alphabet {0..cols−1} marking the
//	  elements participating in the recovered subsequence.
//
// 🔎 Seed generation (CalculateLCS):
//
//	Rows are split into P = 4 contiguous partition blocks; unordered
//	row pairs are enumerated only within each block (the last block
//	absorbs the remainder). This trades recall for runtime, cutting
//	the pair count from r(r−1)/2 to roughly r²/(2P). Retention is
//	either a bounded min-heap of capacity SchBlock (top-K under
//	memory pressure) or a full sort; both orderings use the total key
//	(len, a, b), so the emitted seed list is deterministic and sorted
//	by LCS length descending.
//
// Complexity:
//
//   - Kernel: O(|x|·|y|) time; Pairwise O(|x|·|y|) space, Length O(|y|).
//   - Seeds:  O(r²/(2P) · c²) time; O(SchBlock) retained triples in
//     heap mode.
//
// Errors:
//
//   - core.ErrEmptyInput, core.ErrDimensionMismatch from matrix
//     validation; context cancellation between partition rows.
package lcs
