// Package discretize converts a numeric matrix into a matrix of signed
// discrete rank levels, row by row.
//
// 🚀 What is discretization here?
//
//	Each row is encoded independently against its own empirical
//	quantiles. The sign of an output level denotes direction
//	(up- vs down-regulation), the magnitude denotes the rank level,
//	and zero denotes "neither".
//
// Two regimes, selected by Params.Quantile (q):
//
//   - One-sided (q ≥ 0.5): only up-regulation is ranked. A cell gets
//     the smallest level k ∈ [1..N] whose upper-quantile threshold
//     quantile(row, 1 − k/N) it reaches.
//
//   - Two-sided (q < 0.5): the row's outer quantiles define an upper
//     and a lower cut (the narrower side mirrored around the median);
//     cells below the lower cut rank negatively against the lower
//     tail, cells above the upper cut rank positively against the
//     upper tail, everything else is 0.
//
// Quantiles interpolate linearly between the two surrounding order
// statistics at continuous position p·(n−1).
//
// Complexity:
//
//   - Time:  O(r·c log c) for per-row sorting + O(r·c·N) level search.
//   - Space: O(c) scratch per row.
//
// Errors:
//
//   - core.ErrEmptyInput, core.ErrDimensionMismatch from input
//     validation; core.ErrInvalidParameter via core.NewParams.
package discretize
