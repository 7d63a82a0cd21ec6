package voronoi

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/leiyangcq/BET/grid"
)

// validLadder checks one ladder (dimension d) for length and strict
// monotonicity.
func validLadder(d int, ladder []float64) error {
	if len(ladder) < 2 {
		return fmt.Errorf("dimension %d has %d values: %w", d, len(ladder), ErrLadderTooShort)
	}
	for i := 1; i < len(ladder); i++ {
		if ladder[i] <= ladder[i-1] {
			return fmt.Errorf("dimension %d: %g then %g: %w",
				d, ladder[i-1], ladder[i], ErrLadderOrder)
		}
	}
	return nil
}

// EdgesFromPoints converts generator ladders to bin-edge ladders by the
// midpoint rule: edge[i] = (point[i] + point[i+1]) / 2. Each output ladder
// is one shorter than its input; the outermost generators become the
// outermost finite edges.
//
// Errors: ErrNoLadders, ErrLadderTooShort, ErrLadderOrder.
func EdgesFromPoints(ladders [][]float64) ([][]float64, error) {
	if len(ladders) == 0 {
		return nil, ErrNoLadders
	}

	edges := make([][]float64, len(ladders))
	for d, ladder := range ladders {
		if err := validLadder(d, ladder); err != nil {
			return nil, err
		}
		e := make([]float64, len(ladder)-1)
		for i := range e {
			e[i] = (ladder[i] + ladder[i+1]) / 2
		}
		edges[d] = e
	}
	return edges, nil
}

// PointsFromEdges approximates the generators behind an edge lattice: one
// point at the center of every bin, assembled into the full Cartesian
// product under order. Returns the product and the per-dimension center
// ladders.
//
// This is an approximation, not an inverse of EdgesFromPoints: a boundary
// cell's true generator is not its bin center (a bounding generator sits
// half a cell outside the rectangle, and its mirrored partner further
// still), so a round trip through EdgesFromPoints recovers interior edges
// only. Callers needing exact generators must keep the tessellation that
// produced the edges.
//
// Errors: ErrNoLadders, ErrLadderTooShort, ErrLadderOrder, grid.ErrOrderUnknown.
func PointsFromEdges(edges [][]float64, order grid.Order) (*mat.Dense, [][]float64, error) {
	if len(edges) == 0 {
		return nil, nil, ErrNoLadders
	}

	centers := make([][]float64, len(edges))
	for d, e := range edges {
		if err := validLadder(d, e); err != nil {
			return nil, nil, err
		}
		c := make([]float64, len(e)-1)
		for i := range c {
			c[i] = (e[i] + e[i+1]) / 2
		}
		centers[d] = c
	}

	points, err := grid.Cartesian(centers, order)
	if err != nil {
		return nil, nil, err
	}
	return points, centers, nil
}

// RegularEdges — the tessellation's edge lattice, built directly.
//
// Description:
//
//	Produces, per dimension, the cells[d]+1 evenly spaced edges spanning
//	the resolved rectangle and, for every domain face the rectangle does
//	not touch, one more edge at the domain boundary. The result equals
//	EdgesFromPoints applied to DoubleLayer's ladders without building any
//	points: a layered ladder's interior midpoints are exactly the regular
//	rectangle edges, and the mirrored second layer puts the outermost
//	midpoints on the domain boundary.
//
// With a strictly interior rectangle every dimension gets cells[d]+3 edges
// and hence cells[d]+2 bins, parallel to SingleLayer's cells[d]+2
// generators per dimension. That pairing is what CellVolumes consumes.
//
// Errors: as SingleLayer.
func RegularEdges(cells []int, rect grid.Hyperrect, dom grid.Domain) ([][]float64, error) {
	rectDom, err := resolveInputs(cells, rect, dom)
	if err != nil {
		return nil, err
	}

	edges := make([][]float64, dom.Dim())
	for d, s := range rectDom {
		interior, err := grid.Linspace(s.Min, s.Max, cells[d]+1)
		if err != nil {
			return nil, fmt.Errorf("dimension %d: %w", d, err)
		}
		e := interior
		if dom[d].Min < s.Min || s.Max < dom[d].Max {
			e = make([]float64, 0, len(interior)+2)
			if dom[d].Min < s.Min {
				e = append(e, dom[d].Min)
			}
			e = append(e, interior...)
			if s.Max < dom[d].Max {
				e = append(e, dom[d].Max)
			}
		}
		edges[d] = e
	}
	return edges, nil
}
