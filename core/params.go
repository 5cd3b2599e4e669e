package core

import "fmt"

// Default parameter values — single source of truth for zero-config runs.
const (
	// DefaultTolerance is the required consistency fraction within a block.
	DefaultTolerance = 0.85

	// DefaultQuantile selects the one-sided discretization regime.
	DefaultQuantile = 0.5

	// DefaultFilter disables overlap rejection (1 = keep every block).
	DefaultFilter = 1.0

	// DefaultBlocks is the maximum number of biclusters reported.
	DefaultBlocks = 100

	// DefaultDivided means "derive the rank-level count from the column count".
	DefaultDivided = 0

	// minColWidth is the floor for the derived seed column width.
	minColWidth = 2

	// colWidthDivisor derives ColWidth as cols/colWidthDivisor (≥ minColWidth).
	colWidthDivisor = 20
)

// Params is the immutable per-run parameter record.
//
// Fields:
//   - Tolerance — consistency fraction required within a block, (0.5, 1.0].
//   - Quantile  — discretization regime control, [0, 1]. Values ≥ 0.5
//     select the one-sided (up-regulation) regime; smaller values the
//     two-sided regime.
//   - Filter    — overlap rejection fraction for post-processing, [0, 1].
//     1 disables filtering.
//   - RptBlock  — maximum biclusters returned (> 0).
//   - SchBlock  — upper bound on candidate blocks searched; always
//     2·RptBlock.
//   - Divided   — number of discrete rank levels; 0 means "use the
//     column count" (resolved by Derive).
//   - ColWidth  — minimum block-column seed width; resolved by Derive
//     to max(2, cols/20).
//   - IsPValue  — score blocks by −100·ln(pvalue) instead of rows·cols.
//
// A Params value is constructed once per run by NewParams, completed by
// Derive once the matrix dimensions are known, and never mutated after.
type Params struct {
	Tolerance float64 // required consistency fraction, (0.5, 1.0]
	Quantile  float64 // discretization regime, [0, 1]
	Filter    float64 // overlap rejection fraction, [0, 1]
	RptBlock  int     // maximum reported biclusters
	SchBlock  int     // candidate search bound, 2·RptBlock
	Divided   int     // rank levels; 0 ⇒ column count (via Derive)
	ColWidth  int     // minimum seed column width (via Derive)
	IsPValue  bool    // p-value scoring hook
}

// Option is a functional option for configuring Params.
type Option func(*Params)

// WithTolerance sets the required consistency fraction, (0.5, 1.0].
func WithTolerance(t float64) Option {
	return func(p *Params) { p.Tolerance = t }
}

// WithQuantile sets the discretization quantile, [0, 1].
func WithQuantile(q float64) Option {
	return func(p *Params) { p.Quantile = q }
}

// WithFilter sets the overlap rejection fraction, [0, 1]; 1 disables
// post-processing overlap filtering.
func WithFilter(f float64) Option {
	return func(p *Params) { p.Filter = f }
}

// WithBlocks sets the maximum number of reported biclusters (> 0).
// The candidate search bound SchBlock follows as 2·nbic.
func WithBlocks(nbic int) Option {
	return func(p *Params) { p.RptBlock = nbic }
}

// WithDivided sets the number of discrete rank levels. Zero (default)
// derives the level count from the matrix column count.
func WithDivided(div int) Option {
	return func(p *Params) { p.Divided = div }
}

// WithPValue switches block scoring to −100·ln(pvalue).
func WithPValue() Option {
	return func(p *Params) { p.IsPValue = true }
}

// DefaultParams returns the canonical parameter record:
// Tolerance 0.85, Quantile 0.5, Filter 1, 100 blocks, derived rank levels.
func DefaultParams() Params {
	return Params{
		Tolerance: DefaultTolerance,
		Quantile:  DefaultQuantile,
		Filter:    DefaultFilter,
		RptBlock:  DefaultBlocks,
		SchBlock:  2 * DefaultBlocks,
		Divided:   DefaultDivided,
	}
}

// NewParams builds a validated Params record from the defaults plus the
// given functional options.
//
// Validation (ErrInvalidParameter, in order):
//  1. Tolerance must lie in (0.5, 1.0].
//  2. Quantile must lie in [0, 1].
//  3. Filter must lie in [0, 1].
//  4. RptBlock must be positive.
//  5. Divided must be non-negative.
func NewParams(opts ...Option) (Params, error) {
	p := DefaultParams()
	var opt Option
	for _, opt = range opts {
		opt(&p)
	}

	if p.Tolerance <= 0.5 || p.Tolerance > 1.0 {
		return Params{}, fmt.Errorf("%w: tolerance %v outside (0.5, 1.0]", ErrInvalidParameter, p.Tolerance)
	}
	if p.Quantile < 0 || p.Quantile > 1 {
		return Params{}, fmt.Errorf("%w: quantile %v outside [0, 1]", ErrInvalidParameter, p.Quantile)
	}
	if p.Filter < 0 || p.Filter > 1 {
		return Params{}, fmt.Errorf("%w: filter %v outside [0, 1]", ErrInvalidParameter, p.Filter)
	}
	if p.RptBlock <= 0 {
		return Params{}, fmt.Errorf("%w: block limit %d must be positive", ErrInvalidParameter, p.RptBlock)
	}
	if p.Divided < 0 {
		return Params{}, fmt.Errorf("%w: rank-level count %d must be non-negative", ErrInvalidParameter, p.Divided)
	}

	p.SchBlock = 2 * p.RptBlock

	return p, nil
}

// Derive completes the record for a concrete matrix shape and returns
// the per-run copy: Divided falls back to the column count when unset,
// ColWidth becomes max(2, cols/20), SchBlock is re-pinned to 2·RptBlock.
//
// Errors:
//   - ErrEmptyInput if rows or cols is zero.
//   - ErrZeroDivide if the resolved rank-level count is still zero
//     (internal invariant; implies cols == 0, caught above).
func (p Params) Derive(rows, cols int) (Params, error) {
	if rows <= 0 || cols <= 0 {
		return Params{}, fmt.Errorf("%w: %d×%d", ErrEmptyInput, rows, cols)
	}

	d := p
	d.SchBlock = 2 * d.RptBlock
	if d.Divided == 0 {
		d.Divided = cols
	}
	if d.Divided == 0 {
		return Params{}, ErrZeroDivide
	}
	d.ColWidth = cols / colWidthDivisor
	if d.ColWidth < minColWidth {
		d.ColWidth = minColWidth
	}

	return d, nil
}
