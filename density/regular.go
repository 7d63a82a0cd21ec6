package density

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/leiyangcq/BET/grid"
	"github.com/leiyangcq/BET/voronoi"
)

// UniformRegular — the full uniform-over-a-rectangle pipeline.
//
// Description:
//
//	Sequences tessellation, edge derivation, volume estimation, and
//	density assembly for a hyperrectangle of interest inside dom:
//	single-layer generators, the regular edge lattice (one cell per
//	generator), histogram volumes, then Uniform over the resolved
//	rectangle. The interior cells carry equal mass; the bounding shell
//	carries none.
//
//	When the rectangle fills the whole domain there is no space for a
//	bounding shell, and the shell cells would pair with nothing. The
//	partition is then the plain interior tiling: cells[d] generators per
//	dimension at the cell centers, every cell with volume 1/∏cells, and
//	uniform masses.
//
// opts configures the tessellation stages (flattening order,
// degenerate-cell policy); nil means voronoi.DefaultOptions.
//
// Errors: everything voronoi.SingleLayer, voronoi.CellVolumes, and Uniform
// return. A rectangle with less than half a cell of clearance from a
// domain face surfaces as voronoi.ErrPointOutside from the volume stage:
// its bounding generators fall outside the domain-bounded lattice.
func UniformRegular(cells []int, rect grid.Hyperrect, dom grid.Domain, opts *voronoi.Options) (*SimpleFunction, error) {
	rectDom, err := rect.Resolve(dom)
	if err != nil {
		return nil, err
	}
	if grid.FillsDomain(rectDom, dom) {
		return uniformTiling(cells, rectDom, opts)
	}

	tess, err := voronoi.SingleLayer(cells, rect, dom, opts)
	if err != nil {
		return nil, err
	}
	edges, err := voronoi.RegularEdges(cells, rect, dom)
	if err != nil {
		return nil, err
	}
	volumes, err := voronoi.CellVolumes(edges, tess.Points, opts)
	if err != nil {
		return nil, err
	}
	return Uniform(tess.Points, volumes, tess.Rect)
}

// uniformTiling partitions a rectangle that coincides with its domain:
// cell-center generators only, uniform volumes, no shell.
func uniformTiling(cells []int, rectDom grid.Domain, opts *voronoi.Options) (*SimpleFunction, error) {
	order := grid.RowMajor
	if opts != nil {
		order = opts.Order
	}
	if len(cells) != rectDom.Dim() {
		return nil, fmt.Errorf("cells per edge has %d entries for a %d-dimensional domain: %w",
			len(cells), rectDom.Dim(), voronoi.ErrDimensionMismatch)
	}

	ladders := make([][]float64, rectDom.Dim())
	for d, s := range rectDom {
		if cells[d] < 1 {
			return nil, fmt.Errorf("dimension %d: %d cells: %w", d, cells[d], voronoi.ErrCellCount)
		}
		half := s.Width() / (2 * float64(cells[d]))
		ladder := make([]float64, cells[d])
		for i := range ladder {
			ladder[i] = s.Min + float64(2*i+1)*half
		}
		ladders[d] = ladder
	}

	points, err := grid.Cartesian(ladders, order)
	if err != nil {
		return nil, err
	}
	n, _ := points.Dims()
	volumes := make([]float64, n)
	for i := range volumes {
		volumes[i] = 1 / float64(n)
	}
	return Uniform(points, volumes, rectDom)
}

// UniformFromSamples runs UniformRegular on the domain spanned by a sample
// cloud: the surrounding domain is the per-dimension bounding box of data,
// and the rectangle of interest is centered on center with ratio of each
// data range. This is the usual setup for an inverse problem, where data
// holds forward-model outputs and center a reference measurement.
//
// Errors: grid.ErrNoSamples and grid.ErrSpanOrder from the bounding box
// (constant data columns have no extent), plus everything UniformRegular
// returns; a center too close to the data's hull for the rectangle to fit
// fails with grid.ErrRectNotContained.
func UniformFromSamples(data *mat.Dense, center []float64, ratio float64, cells []int, opts *voronoi.Options) (*SimpleFunction, error) {
	dom, err := grid.FromSamples(data)
	if err != nil {
		return nil, err
	}
	rect := grid.Hyperrect{Center: center, Ratio: ratio}
	return UniformRegular(cells, rect, dom, opts)
}
