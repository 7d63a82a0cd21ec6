package grid

import "errors"

// Sentinel errors for grid construction and indexing. All are compared with
// errors.Is; callers may wrap them with extra context but must not replace
// them.
var (
	// ErrEmptyDomain indicates a domain (or ladder set) with no dimensions.
	ErrEmptyDomain = errors.New("grid: domain must have at least one dimension")

	// ErrSpanOrder indicates a span whose bounds are not finite numbers
	// with the minimum strictly below the maximum (inverted, zero-width,
	// NaN, or infinite bounds).
	ErrSpanOrder = errors.New("grid: span bounds must be finite with min strictly below max")

	// ErrRatioRange indicates a hyperrectangle ratio outside (0, 1].
	ErrRatioRange = errors.New("grid: ratio must lie in (0, 1]")

	// ErrRectNotContained indicates a hyperrectangle with a face outside
	// its surrounding domain.
	ErrRectNotContained = errors.New("grid: hyperrectangle not strictly contained in surrounding domain")

	// ErrDimensionMismatch indicates inconsistent dimensionality across
	// inputs (center vs. domain, widths vs. domain, sub vs. dims).
	ErrDimensionMismatch = errors.New("grid: inconsistent dimensionality across inputs")

	// ErrEmptyLadder indicates a per-dimension ladder with no values.
	ErrEmptyLadder = errors.New("grid: ladder must contain at least one value")

	// ErrLinspaceCount indicates a linspace request for fewer than two points.
	ErrLinspaceCount = errors.New("grid: linspace needs at least two points")

	// ErrOrderUnknown indicates a flattening order that is neither RowMajor
	// nor ColMajor.
	ErrOrderUnknown = errors.New("grid: unknown flattening order")

	// ErrIndexRange indicates a flat index or multi-index outside the grid.
	ErrIndexRange = errors.New("grid: index out of range")

	// ErrDimSize indicates a non-positive per-dimension size.
	ErrDimSize = errors.New("grid: dimension sizes must be positive")

	// ErrNoSamples indicates an empty sample matrix.
	ErrNoSamples = errors.New("grid: sample matrix must be non-empty")

	// ErrSampleCount indicates a non-positive requested sample count.
	ErrSampleCount = errors.New("grid: sample count must be positive")

	// ErrNilSource indicates a missing random source where one is required.
	ErrNilSource = errors.New("grid: random source must be non-nil")
)
