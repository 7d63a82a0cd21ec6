package prob_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/leiyangcq/BET/density"
	"github.com/leiyangcq/BET/grid"
	"github.com/leiyangcq/BET/prob"
)

// reference builds the 2x2-cell density on the centered half-width
// hyperrectangle inside the unit square. Its sixteen generator points carry
// mass 0.25 on the four interior cells (flat indices 5, 6, 9 and 10) and
// zero on the boundary shell.
func reference(t *testing.T) *density.SimpleFunction {
	t.Helper()
	f, err := density.UniformRegular(
		[]int{2, 2},
		grid.Hyperrect{Center: []float64{0.5, 0.5}, Ratio: 0.5},
		grid.Unit(2),
		nil,
	)
	require.NoError(t, err)
	return f
}

func TestComputeSplitsMass(t *testing.T) {
	f := reference(t)

	// Three samples share the cell of generator 5, one sample sits alone in
	// the cell of generator 10.
	outputs := mat.NewDense(4, 2, []float64{
		0.30, 0.30,
		0.35, 0.40,
		0.40, 0.35,
		0.60, 0.65,
	})

	res, err := prob.Compute(f, outputs)
	require.NoError(t, err)
	require.Equal(t, 4, res.Len())

	assert.Equal(t, []int{5, 5, 5, 10}, res.Cells)
	assert.Equal(t, 0.25/3, res.P[0])
	assert.Equal(t, 0.25/3, res.P[1])
	assert.Equal(t, 0.25/3, res.P[2])
	assert.Equal(t, 0.25, res.P[3])
	assert.Equal(t, []float64{0.25, 0.25, 0.25, 0.25}, res.Volumes)

	// Two cells answered for, each worth a quarter of the density.
	assert.InDelta(t, 0.5, res.TotalMass(), 1e-15)
}

func TestComputeZeroMassCells(t *testing.T) {
	f := reference(t)

	// The first sample lands in the zero-mass boundary shell, the second at
	// an interior generator.
	outputs := mat.NewDense(2, 2, []float64{
		0.05, 0.05,
		0.375, 0.375,
	})

	res, err := prob.Compute(f, outputs)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 5}, res.Cells)
	assert.Equal(t, []float64{0, 0.25}, res.P)
	assert.Equal(t, 0.25, res.TotalMass())
}

func TestComputeErrors(t *testing.T) {
	f := reference(t)

	_, err := prob.Compute(nil, mat.NewDense(1, 2, []float64{0.5, 0.5}))
	assert.ErrorIs(t, err, prob.ErrNilDensity)

	_, err = prob.Compute(f, nil)
	assert.ErrorIs(t, err, prob.ErrNoSamples)

	_, err = prob.Compute(f, &mat.Dense{})
	assert.ErrorIs(t, err, prob.ErrNoSamples)

	_, err = prob.Compute(f, mat.NewDense(1, 3, []float64{0.5, 0.5, 0.5}))
	assert.ErrorIs(t, err, density.ErrDimensionMismatch)

	// A hand-assembled density has no nearest-point index.
	bare := &density.SimpleFunction{
		Points: mat.NewDense(1, 2, []float64{0.5, 0.5}),
		Masses: []float64{1},
		Rect:   grid.Unit(2),
	}
	_, err = prob.Compute(bare, mat.NewDense(1, 2, []float64{0.5, 0.5}))
	assert.ErrorIs(t, err, density.ErrNoIndex)
}

func TestMonteCarloVolumes(t *testing.T) {
	volumes, err := prob.MonteCarloVolumes(4)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.25, 0.25, 0.25}, volumes)

	_, err = prob.MonteCarloVolumes(0)
	assert.ErrorIs(t, err, prob.ErrSampleCount)

	_, err = prob.MonteCarloVolumes(-3)
	assert.ErrorIs(t, err, prob.ErrSampleCount)
}
