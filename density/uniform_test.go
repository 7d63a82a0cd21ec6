package density_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/leiyangcq/BET/density"
	"github.com/leiyangcq/BET/grid"
	"github.com/leiyangcq/BET/voronoi"
)

// column wraps a 1-D coordinate list as an (n x 1) point matrix.
func column(xs ...float64) *mat.Dense {
	return mat.NewDense(len(xs), 1, xs)
}

// TestUniformPipeline assembles the density from explicitly built pipeline
// parts: single-layer generators, regular edges, histogram volumes. The
// four interior cells split the mass evenly; the shell carries none.
func TestUniformPipeline(t *testing.T) {
	cells := []int{2, 2}
	rect := grid.Hyperrect{Center: []float64{0.5, 0.5}, Ratio: 0.5}
	dom := grid.Unit(2)

	tess, err := voronoi.SingleLayer(cells, rect, dom, nil)
	require.NoError(t, err)
	edges, err := voronoi.RegularEdges(cells, rect, dom)
	require.NoError(t, err)
	volumes, err := voronoi.CellVolumes(edges, tess.Points, nil)
	require.NoError(t, err)

	f, err := density.Uniform(tess.Points, volumes, tess.Rect)
	require.NoError(t, err)

	require.Equal(t, 16, f.Len())
	interior := map[int]bool{5: true, 6: true, 9: true, 10: true}
	for i, m := range f.Masses {
		if interior[i] {
			assert.Equal(t, 0.25, m, "interior point %d", i)
		} else {
			assert.Zero(t, m, "shell point %d", i)
		}
	}
	assert.InDelta(t, 1, f.TotalMass(), 1e-9)
}

// TestUniformInclusiveFaces checks that a point exactly on a target face
// belongs to the support.
func TestUniformInclusiveFaces(t *testing.T) {
	points := column(0.25, 0.5, 0.9)
	volumes := []float64{0.2, 0.3, 0.5}
	target := grid.Domain{{Min: 0.25, Max: 0.75}}

	f, err := density.Uniform(points, volumes, target)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{0.4, 0.6, 0}, f.Masses, 1e-15)
	assert.InDelta(t, 1, f.TotalMass(), 1e-9)
}

// TestUniformEmptySupport rejects targets with no mass to normalize.
func TestUniformEmptySupport(t *testing.T) {
	target := grid.Domain{{Min: 0, Max: 1}}

	// No point inside.
	_, err := density.Uniform(column(1.5, 2.5), []float64{0.5, 0.5}, target)
	assert.ErrorIs(t, err, density.ErrEmptySupport)

	// A point inside, but with zero volume.
	_, err = density.Uniform(column(0.5, 1.5), []float64{0, 1}, target)
	assert.ErrorIs(t, err, density.ErrEmptySupport)
}

// TestUniformInputErrors covers the validation surface.
func TestUniformInputErrors(t *testing.T) {
	target := grid.Domain{{Min: 0, Max: 1}}

	_, err := density.Uniform(nil, nil, target)
	assert.ErrorIs(t, err, density.ErrNoPoints)

	_, err = density.Uniform(column(0.5), []float64{0.5, 0.5}, target)
	assert.ErrorIs(t, err, density.ErrLengthMismatch)

	_, err = density.Uniform(column(0.5), []float64{-0.5}, target)
	assert.ErrorIs(t, err, density.ErrNegativeVolume)

	_, err = density.Uniform(mat.NewDense(1, 2, []float64{0.5, 0.5}), []float64{1}, target)
	assert.ErrorIs(t, err, density.ErrDimensionMismatch)

	_, err = density.Uniform(column(0.5), []float64{1}, grid.Domain{{Min: 1, Max: 0}})
	assert.ErrorIs(t, err, grid.ErrSpanOrder)
}
