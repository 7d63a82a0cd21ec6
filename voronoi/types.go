package voronoi

import (
	"gonum.org/v1/gonum/mat"

	"github.com/leiyangcq/BET/grid"
)

// EmptyCellPolicy selects how CellVolumes treats degenerate cells: bins with
// no point, and points outside every bin. The two conditions come in pairs
// (with one bin per point, a stray point always leaves some bin empty).
type EmptyCellPolicy int

const (
	// EmptyCellError fails fast with ErrEmptyCell or ErrPointOutside.
	// This is the default: a degenerate cell means the partition does not
	// carry one point per cell and downstream volumes would be wrong.
	EmptyCellError EmptyCellPolicy = iota

	// EmptyCellZero assigns volume 0 to points outside the lattice and
	// tolerates empty bins. Points sharing a bin split its volume evenly.
	EmptyCellZero
)

// String returns the policy's name for diagnostics.
func (p EmptyCellPolicy) String() string {
	switch p {
	case EmptyCellError:
		return "EmptyCellError"
	case EmptyCellZero:
		return "EmptyCellZero"
	default:
		return "EmptyCellPolicy(unknown)"
	}
}

// valid reports whether p is a defined EmptyCellPolicy value.
func (p EmptyCellPolicy) valid() bool { return p == EmptyCellError || p == EmptyCellZero }

// Options configures tessellation construction and volume estimation.
// The zero value equals DefaultOptions().
type Options struct {
	// Order fixes the flattening contract for point sets and volume
	// vectors. Default RowMajor (last dimension fastest).
	Order grid.Order

	// EmptyCells selects the degenerate-cell handling in CellVolumes.
	// Default EmptyCellError.
	EmptyCells EmptyCellPolicy
}

// DefaultOptions returns the default configuration: RowMajor flattening and
// fail-fast degenerate-cell handling.
func DefaultOptions() Options {
	return Options{
		Order:      grid.RowMajor,
		EmptyCells: EmptyCellError,
	}
}

// withDefaults dereferences opts, substituting DefaultOptions for nil.
func withDefaults(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}
	return *opts
}

// Tessellation is a layered regular tessellation: the generator point set
// plus the per-dimension ladders it was built from. Produced by SingleLayer
// or DoubleLayer and read-only afterwards.
type Tessellation struct {
	// Points holds the generator points, one row per point, flattened from
	// the outermost ladders under Order.
	Points *mat.Dense

	// Layer1 holds the interior+layer1 ladder per dimension
	// (cells+2 values each).
	Layer1 [][]float64

	// Layer2 holds the interior+layer2 ladder per dimension (cells+4
	// values each). It aliases Layer1 in dimensions where no second layer
	// exists: single-layer grids, and dimensions the rectangle fills.
	Layer2 [][]float64

	// Rect is the resolved hyperrectangle the interior cells tile.
	Rect grid.Domain

	// Domain is the surrounding domain the shell cells are bounded by.
	Domain grid.Domain

	// Order is the flattening contract Points was produced under.
	Order grid.Order
}

// Dim returns the number of dimensions.
func (t *Tessellation) Dim() int { return len(t.Rect) }

// Len returns the number of generator points.
func (t *Tessellation) Len() int {
	if t.Points == nil {
		return 0
	}
	r, _ := t.Points.Dims()
	return r
}

// Edges derives the tessellation's bin edges from the outermost ladders by
// the midpoint rule. For a double-layer grid the outermost edge in each
// dimension equals the surrounding domain boundary.
func (t *Tessellation) Edges() ([][]float64, error) {
	return EdgesFromPoints(t.Layer2)
}
