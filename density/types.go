package density

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/leiyangcq/BET/grid"
)

// SimpleFunction is a piecewise-constant probability density over a set of
// generator points: point i carries probability mass Masses[i] on its cell.
// Masses are zero outside Rect and sum to one. Built by Uniform (or the
// orchestrators on top of it) and read-only afterwards: the spatial index
// is tied to the points it was built over, so changing a field instead of
// constructing a new value leaves the two out of step.
type SimpleFunction struct {
	// Points holds the generator points, one row per point.
	Points *mat.Dense

	// Masses holds one probability mass per point, parallel to the rows
	// of Points.
	Masses []float64

	// Rect is the target hyperrectangle carrying all of the mass.
	Rect grid.Domain

	tree *kdtree.Tree
}

// Len returns the number of generator points.
func (f *SimpleFunction) Len() int { return len(f.Masses) }

// Dim returns the number of dimensions.
func (f *SimpleFunction) Dim() int { return f.Rect.Dim() }

// TotalMass returns the sum of all point masses. It equals 1 up to
// floating-point error for any constructed SimpleFunction.
func (f *SimpleFunction) TotalMass() float64 { return floats.Sum(f.Masses) }
