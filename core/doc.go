// Package core provides the fundamental run configuration and input
// validation shared by every stage of the unibic pipeline.
//
// 🚀 What lives here?
//
//	• Params — the immutable per-run parameter record: tolerance,
//	  quantile, overlap filter, block limits, rank-level count, and
//	  the limits derived from matrix dimensions (SchBlock, ColWidth,
//	  effective Divided).
//	• Functional options (WithTolerance, WithQuantile, …) applied by
//	  NewParams with strict validation at construction time.
//	• Matrix validators for the numeric and integer inputs consumed
//	  by the stages (rectangularity, emptiness, dimension agreement).
//
// ✨ Design guarantees:
//
//   - No global state — a Params value is built once per run and
//     threaded explicitly through every operation.
//   - Immutability — Derive returns a copy; stages never mutate the
//     record they receive.
//   - Fail fast — invalid configuration surfaces as sentinel errors
//     from NewParams, never later as silent misbehavior.
//
// Errors (sentinel):
//
//   - ErrInvalidParameter — a tunable is outside its documented range.
//   - ErrDimensionMismatch — related inputs disagree on shape.
//   - ErrEmptyInput — a matrix has zero rows or zero columns.
//   - ErrZeroDivide — the derived rank-level count is zero
//     (internal invariant; unreachable through the public API).
package core
