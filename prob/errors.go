package prob

import "errors"

var (
	// ErrNilDensity is returned when the density argument is nil.
	ErrNilDensity = errors.New("prob: density must not be nil")

	// ErrNoSamples is returned when the output sample matrix is nil or has
	// no rows.
	ErrNoSamples = errors.New("prob: output sample set is empty")

	// ErrSampleCount is returned by MonteCarloVolumes when the requested
	// sample count is not positive.
	ErrSampleCount = errors.New("prob: sample count must be positive")

	// ErrNilResult is returned when the result argument is nil.
	ErrNilResult = errors.New("prob: result must not be nil")

	// ErrLengthMismatch is returned when a result's probability and volume
	// vectors disagree in length.
	ErrLengthMismatch = errors.New("prob: result vectors disagree in length")

	// ErrPercentile is returned when the requested probability share lies
	// outside (0, 1].
	ErrPercentile = errors.New("prob: percentile must lie in (0, 1]")

	// ErrNoMass is returned when no sample carries positive probability, so
	// no support exists.
	ErrNoMass = errors.New("prob: no sample carries probability")
)
