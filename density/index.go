package density

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// cell is one generator point in the spatial index, tagged with its flat
// index so a nearest-neighbor hit maps back to the mass vector. Queries use
// index -1.
type cell struct {
	coords []float64
	index  int
}

// Compare returns the signed distance of c from the plane through other
// along dimension d.
func (c cell) Compare(other kdtree.Comparable, d kdtree.Dim) float64 {
	return c.coords[d] - other.(cell).coords[d]
}

// Dims returns the number of coordinates.
func (c cell) Dims() int { return len(c.coords) }

// Distance returns the squared Euclidean distance to other.
func (c cell) Distance(other kdtree.Comparable) float64 {
	o := other.(cell)
	var sum float64
	for d, v := range c.coords {
		diff := v - o.coords[d]
		sum += diff * diff
	}
	return sum
}

// cells is a kdtree.Interface over a set of generator cells.
type cells []cell

func (c cells) Index(i int) kdtree.Comparable { return c[i] }

func (c cells) Len() int { return len(c) }

func (c cells) Pivot(d kdtree.Dim) int { return plane{cells: c, Dim: d}.Pivot() }

func (c cells) Slice(start, end int) kdtree.Interface { return c[start:end] }

// plane is a permutable set of cells ordered along one dimension, used for
// median partitioning during tree construction.
type plane struct {
	kdtree.Dim
	cells
}

func (p plane) Less(i, j int) bool {
	return p.cells[i].coords[p.Dim] < p.cells[j].coords[p.Dim]
}

func (p plane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }

func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.cells = p.cells[start:end]
	return p
}

func (p plane) Swap(i, j int) {
	p.cells[i], p.cells[j] = p.cells[j], p.cells[i]
}

// buildIndex constructs the k-d tree over the rows of points. The cells own
// row copies, so later writes to points cannot skew the tree.
func buildIndex(points *mat.Dense) *kdtree.Tree {
	n, dim := points.Dims()
	set := make(cells, n)
	for i := 0; i < n; i++ {
		coords := make([]float64, dim)
		copy(coords, points.RawRowView(i))
		set[i] = cell{coords: coords, index: i}
	}
	return kdtree.New(set, false)
}

// Nearest returns the index of the generator point closest to q and the
// squared Euclidean distance to it. Ties resolve to a single deterministic
// winner for a given construction.
func (f *SimpleFunction) Nearest(q []float64) (int, float64, error) {
	if f.tree == nil {
		return 0, 0, ErrNoIndex
	}
	if len(q) != f.Dim() {
		return 0, 0, fmt.Errorf("query has %d coordinates for %d dimensions: %w",
			len(q), f.Dim(), ErrDimensionMismatch)
	}

	got, dist := f.tree.Nearest(cell{coords: q, index: -1})
	return got.(cell).index, dist, nil
}

// NearestAll maps every row of queries to its owning generator point.
// Returns the owning indices and squared Euclidean distances, parallel to
// the query rows.
func (f *SimpleFunction) NearestAll(queries *mat.Dense) ([]int, []float64, error) {
	if f.tree == nil {
		return nil, nil, ErrNoIndex
	}
	if queries == nil {
		return nil, nil, ErrNoPoints
	}
	n, dim := queries.Dims()
	if dim != f.Dim() {
		return nil, nil, fmt.Errorf("queries have %d columns for %d dimensions: %w",
			dim, f.Dim(), ErrDimensionMismatch)
	}

	owners := make([]int, n)
	dists := make([]float64, n)
	for i := 0; i < n; i++ {
		got, dist := f.tree.Nearest(cell{coords: queries.RawRowView(i), index: -1})
		owners[i] = got.(cell).index
		dists[i] = dist
	}
	return owners, dists, nil
}
