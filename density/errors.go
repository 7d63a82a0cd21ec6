package density

import "errors"

var (
	// ErrNoPoints is returned when a point matrix is nil or has no rows.
	ErrNoPoints = errors.New("density: point set is empty")

	// ErrLengthMismatch is returned when the volume vector's length does
	// not match the number of points.
	ErrLengthMismatch = errors.New("density: volumes length does not match point count")

	// ErrDimensionMismatch is returned when inputs disagree on the number
	// of dimensions (point columns, target region, query length).
	ErrDimensionMismatch = errors.New("density: dimension counts disagree")

	// ErrNegativeVolume is returned when a volume entry is negative.
	ErrNegativeVolume = errors.New("density: volumes must be non-negative")

	// ErrEmptySupport is returned when no volume-bearing point lies inside
	// the target region: the result could not represent a probability
	// distribution.
	ErrEmptySupport = errors.New("density: no volume-bearing point inside the target region")

	// ErrNoIndex is returned by nearest-point queries on a zero-value
	// SimpleFunction. Densities must come from a constructor.
	ErrNoIndex = errors.New("density: spatial index not built")
)
