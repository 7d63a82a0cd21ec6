package voronoi

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/leiyangcq/BET/grid"
)

// CellVolumes — per-cell volumes by multi-dimensional histogramming.
//
// Description:
//
//	Bins every point into the axis-aligned lattice defined by edges and
//	assigns point i the volume 1/(count(bin(i)) * numPoints). Under the
//	assumption that the points sample the bounded region uniformly (exact
//	for the regular tessellations built here, one point per cell), this
//	is the Monte-Carlo measure of point i's cell as a fraction of the
//	lattice's region: one point per bin gives every point 1/numPoints,
//	and the volumes sum to 1.
//
// Bins follow histogram interval semantics: [e[j], e[j+1]) half-open,
// except the last bin of each dimension, which is closed. The lattice must
// carry exactly one bin per point (∏(len(edges[d])-1) == numPoints). The
// volume vector is parallel to the point rows under either Order, because
// each point's bin is resolved individually; consumers that map volumes to
// bins positionally still need the matching Order. Degenerate cells are
// handled per opts.EmptyCells:
//
//   - EmptyCellError (default): a point outside every bin fails with
//     ErrPointOutside; a bin without a point fails with ErrEmptyCell.
//   - EmptyCellZero: outside points get volume 0 and empty bins are
//     tolerated; points sharing a bin split its volume evenly.
//
// Complexity: O(numPoints · dim · log maxEdges) time, O(numPoints) space.
//
// Errors: ErrNoPoints, ErrNoLadders, ErrDimensionMismatch,
// ErrLadderTooShort, ErrLadderOrder, ErrShapeMismatch, ErrPointOutside,
// ErrEmptyCell, ErrPolicyUnknown, grid.ErrOrderUnknown.
func CellVolumes(edges [][]float64, points *mat.Dense, opts *Options) ([]float64, error) {
	o := withDefaults(opts)
	if !o.EmptyCells.valid() {
		return nil, fmt.Errorf("%v: %w", o.EmptyCells, ErrPolicyUnknown)
	}
	if points == nil {
		return nil, ErrNoPoints
	}
	n, mdim := points.Dims()
	if n == 0 {
		return nil, ErrNoPoints
	}
	if len(edges) == 0 {
		return nil, ErrNoLadders
	}
	if mdim != len(edges) {
		return nil, fmt.Errorf("points have %d columns for %d edge ladders: %w",
			mdim, len(edges), ErrDimensionMismatch)
	}

	// Stage 1 - validate the lattice and check one bin per point.
	dims := make([]int, len(edges))
	cellTotal := 1
	for d, e := range edges {
		if err := validLadder(d, e); err != nil {
			return nil, err
		}
		dims[d] = len(e) - 1
		cellTotal *= dims[d]
	}
	if cellTotal != n {
		return nil, fmt.Errorf("%d cells for %d points: %w", cellTotal, n, ErrShapeMismatch)
	}

	// Stage 2 - bin every point and count occupancy.
	counts := make([]int, cellTotal)
	cellOf := make([]int, n)
	sub := make([]int, mdim)
	for i := 0; i < n; i++ {
		row := points.RawRowView(i)
		outside := false
		for d := range sub {
			b := binIndex(edges[d], row[d])
			if b < 0 {
				outside = true
				break
			}
			sub[d] = b
		}
		if outside {
			if o.EmptyCells == EmptyCellError {
				return nil, fmt.Errorf("point %d at %v: %w", i, row, ErrPointOutside)
			}
			cellOf[i] = -1
			continue
		}
		cell, err := grid.FlatIndex(sub, dims, o.Order)
		if err != nil {
			return nil, err
		}
		counts[cell]++
		cellOf[i] = cell
	}
	if o.EmptyCells == EmptyCellError {
		for cell, c := range counts {
			if c == 0 {
				return nil, fmt.Errorf("cell %d of %d: %w", cell, cellTotal, ErrEmptyCell)
			}
		}
	}

	// Stage 3 - attribute volumes.
	volumes := make([]float64, n)
	total := float64(n)
	for i, cell := range cellOf {
		if cell < 0 {
			continue
		}
		volumes[i] = 1 / (float64(counts[cell]) * total)
	}
	return volumes, nil
}

// binIndex locates x in the bin partition of a strictly increasing edge
// ladder: bins [e[j], e[j+1]) half-open, last bin closed. Returns -1 when
// x lies outside [e[0], e[last]]; the negated-range form also rejects NaN.
func binIndex(edges []float64, x float64) int {
	last := len(edges) - 1
	if !(x >= edges[0] && x <= edges[last]) {
		return -1
	}
	i := sort.SearchFloat64s(edges, x)
	if i <= last && edges[i] == x {
		if i == last {
			return last - 1
		}
		return i
	}
	return i - 1
}
