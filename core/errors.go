package core

import "errors"

// Sentinel errors shared by all pipeline stages.
var (
	// ErrInvalidParameter indicates a tunable outside its documented range:
	// Tolerance ∉ (0.5, 1.0], Quantile ∉ [0, 1], Filter ∉ [0, 1],
	// RptBlock ≤ 0, or Divided < 0.
	ErrInvalidParameter = errors.New("core: invalid parameter")

	// ErrDimensionMismatch indicates related inputs disagreeing on shape:
	// ragged matrix rows, seed arrays of unequal length, or rank/discrete
	// matrices of different dimensions.
	ErrDimensionMismatch = errors.New("core: dimension mismatch")

	// ErrEmptyInput indicates a matrix with zero rows or zero columns.
	ErrEmptyInput = errors.New("core: empty input matrix")

	// ErrZeroDivide indicates a zero rank-level count after derivation.
	// This is an internal invariant violation and should be unreachable
	// through the public constructors.
	ErrZeroDivide = errors.New("core: rank-level count is zero")
)
