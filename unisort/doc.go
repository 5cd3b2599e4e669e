// Package unisort encodes each row of a numeric matrix as the
// permutation of its column indices in ascending value order.
//
// 🚀 What is the rank encoding?
//
//	For an input row, the output row R[i] satisfies: R[i][k] is the
//	column index of the k-th smallest value of row i. Sorting is
//	stable, so equal values keep their original column order — a
//	requirement for reproducible downstream LCS comparisons.
//
// Rows are independent and processed in parallel; every worker owns a
// private scratch buffer and writes only its own output row, so the
// result is deterministic regardless of scheduling.
//
// Complexity:
//
//   - Time:  O(r·c log c)
//   - Space: O(c) scratch per worker, O(r·c) output.
//
// Errors:
//
//   - core.ErrEmptyInput, core.ErrDimensionMismatch from input
//     validation.
package unisort
