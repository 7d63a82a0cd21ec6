package density

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/leiyangcq/BET/grid"
)

// Uniform — simple-function approximation of a uniform density.
//
// Description:
//
//	Marks every point inside the target rectangle (inclusive per face),
//	assigns it the mass volumes[i] / Σ volumes[inside], and zero to every
//	point outside. The result approximates the uniform distribution over
//	target by a function constant on each point's cell, with total mass
//	exactly one up to floating-point error.
//
// The spatial index over all points (inside and outside) is built here,
// once; Nearest and NearestAll query it without rebuilding.
//
// Errors:
//   - ErrNoPoints, ErrLengthMismatch, ErrDimensionMismatch,
//     ErrNegativeVolume — malformed inputs.
//   - ErrEmptySupport — no point inside target, or only zero-volume
//     points inside; no probability distribution can be represented.
//   - grid errors — target is not a valid Domain.
func Uniform(points *mat.Dense, volumes []float64, target grid.Domain) (*SimpleFunction, error) {
	if points == nil {
		return nil, ErrNoPoints
	}
	n, dim := points.Dims()
	if n == 0 {
		return nil, ErrNoPoints
	}
	if err := target.Validate(); err != nil {
		return nil, err
	}
	if dim != target.Dim() {
		return nil, fmt.Errorf("points have %d columns for a %d-dimensional target: %w",
			dim, target.Dim(), ErrDimensionMismatch)
	}
	if len(volumes) != n {
		return nil, fmt.Errorf("%d volumes for %d points: %w", len(volumes), n, ErrLengthMismatch)
	}
	for i, v := range volumes {
		if v < 0 {
			return nil, fmt.Errorf("volume %d is %g: %w", i, v, ErrNegativeVolume)
		}
	}

	// Stage 1 - find the support and its total volume.
	inside := make([]bool, n)
	var support float64
	var supported bool
	for i := 0; i < n; i++ {
		if target.Contains(points.RawRowView(i)) {
			inside[i] = true
			support += volumes[i]
			supported = true
		}
	}
	if !supported || support == 0 {
		return nil, ErrEmptySupport
	}

	// Stage 2 - normalize masses over the support.
	masses := make([]float64, n)
	for i := range masses {
		if inside[i] {
			masses[i] = volumes[i] / support
		}
	}

	return &SimpleFunction{
		Points: points,
		Masses: masses,
		Rect:   target,
		tree:   buildIndex(points),
	}, nil
}
