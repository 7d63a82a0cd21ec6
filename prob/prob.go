package prob

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/leiyangcq/BET/density"
)

// Compute assigns inverse probabilities to a batch of output samples.
//
// Description:
//
//	Each row of outputs is the forward-model image of one parameter sample.
//	The sample is attributed to the density cell whose generator point lies
//	nearest to it, and the cell's mass is divided evenly among all samples
//	attributed to that cell. Samples landing in cells the density gives no
//	mass receive probability zero. Volumes are filled under the Monte-Carlo
//	assumption, an equal 1/n share per sample.
//
// Algorithm Outline:
//
//	Stage 1 - resolve each output sample's owning cell via the density's
//	          nearest-point index.
//	Stage 2 - count the samples per cell, then set every sample's
//	          probability to mass(cell)/count(cell).
//	Stage 3 - attach the uniform Monte-Carlo volume vector.
//
// Complexity: O(n log m) time for n samples over m density points, O(n+m)
// additional space.
//
// Errors:
//   - ErrNilDensity if f is nil.
//   - ErrNoSamples if outputs is nil or has no rows.
//   - density.ErrDimensionMismatch if output columns disagree with the
//     density's dimension.
//   - density.ErrNoIndex if the density was hand-built without its index.
func Compute(f *density.SimpleFunction, outputs *mat.Dense) (*Result, error) {
	if f == nil {
		return nil, ErrNilDensity
	}
	if outputs == nil {
		return nil, ErrNoSamples
	}
	n, _ := outputs.Dims()
	if n == 0 {
		return nil, ErrNoSamples
	}

	// Stage 1 - owner lookup.
	owners, _, err := f.NearestAll(outputs)
	if err != nil {
		return nil, fmt.Errorf("resolve sample owners: %w", err)
	}

	// Stage 2 - split each cell's mass evenly among its samples.
	counts := make([]int, f.Len())
	for _, c := range owners {
		counts[c]++
	}
	p := make([]float64, n)
	for i, c := range owners {
		p[i] = f.Masses[c] / float64(counts[c])
	}

	// Stage 3 - Monte-Carlo volume shares.
	volumes, err := MonteCarloVolumes(n)
	if err != nil {
		return nil, err
	}

	return &Result{P: p, Volumes: volumes, Cells: owners}, nil
}

// MonteCarloVolumes returns the uniform volume vector for a run of n
// samples: every entry is 1/n, so the vector sums to one and a subset's sum
// estimates the fraction of the domain the subset occupies.
//
// Errors:
//   - ErrSampleCount if n is not positive.
func MonteCarloVolumes(n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrSampleCount)
	}
	share := 1 / float64(n)
	volumes := make([]float64, n)
	for i := range volumes {
		volumes[i] = share
	}
	return volumes, nil
}
