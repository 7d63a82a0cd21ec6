package voronoi

import (
	"fmt"

	"github.com/leiyangcq/BET/grid"
)

// resolveInputs validates the shared generator inputs and resolves the
// hyperrectangle. cells must hold one positive entry per domain dimension.
func resolveInputs(cells []int, rect grid.Hyperrect, dom grid.Domain) (grid.Domain, error) {
	rectDom, err := rect.Resolve(dom)
	if err != nil {
		return nil, err
	}
	if len(cells) != dom.Dim() {
		return nil, fmt.Errorf("cells per edge has %d entries for a %d-dimensional domain: %w",
			len(cells), dom.Dim(), ErrDimensionMismatch)
	}
	for d, c := range cells {
		if c < 1 {
			return nil, fmt.Errorf("dimension %d: %d cells: %w", d, c, ErrCellCount)
		}
	}
	return rectDom, nil
}

// layer1Ladders builds the interior+layer1 ladder per dimension: cells[d]
// interior generators spanning the rectangle plus one bounding generator
// half a cell width outside each face. The interior spacing equals the cell
// width, so the ladder's midpoints land exactly on the cell edges.
func layer1Ladders(cells []int, rect grid.Domain) ([][]float64, error) {
	ladders := make([][]float64, len(rect))
	for d, s := range rect {
		half := s.Width() / (2 * float64(cells[d]))
		ladder, err := grid.Linspace(s.Min-half, s.Max+half, cells[d]+2)
		if err != nil {
			return nil, fmt.Errorf("dimension %d: %w", d, err)
		}
		ladders[d] = ladder
	}
	return ladders, nil
}

// SingleLayer — interior tessellation with one bounding layer.
//
// Description:
//
//	Tiles the hyperrectangle rect resolves to with cells[d] generator
//	points along dimension d and adds one bounding generator on each side.
//	The ladder's midpoint edges land exactly on the rectangle faces, so
//	the interior cells tile the rectangle exactly and the bounding layer
//	absorbs whatever lies beyond them.
//
// Algorithm Outline:
//  1. Resolve rect inside dom; validate cells (one positive entry per
//     dimension).
//  2. Per dimension d: half = rectWidth/(2*cells[d]);
//     ladder = linspace(rectMin-half, rectMax+half, cells[d]+2).
//  3. Points = Cartesian product of the ladders under opts.Order.
//
// The bounding generators may lie outside dom when the rectangle comes
// closer than half a cell width to a domain face; SingleLayer tolerates
// that (DoubleLayer, which must mirror them across the face, does not).
//
// Complexity: O(∏(cells[d]+2) · dim) time and space.
//
// Errors: propagated from grid.Hyperrect.Resolve (ErrRatioRange,
// ErrRectNotContained, ...), plus ErrDimensionMismatch and ErrCellCount
// for malformed cells.
func SingleLayer(cells []int, rect grid.Hyperrect, dom grid.Domain, opts *Options) (*Tessellation, error) {
	o := withDefaults(opts)
	rectDom, err := resolveInputs(cells, rect, dom)
	if err != nil {
		return nil, err
	}

	layer1, err := layer1Ladders(cells, rectDom)
	if err != nil {
		return nil, err
	}
	points, err := grid.Cartesian(layer1, o.Order)
	if err != nil {
		return nil, err
	}

	return &Tessellation{
		Points: points,
		Layer1: layer1,
		Layer2: layer1,
		Rect:   rectDom,
		Domain: dom,
		Order:  o.Order,
	}, nil
}

// DoubleLayer — interior tessellation with two bounding layers.
//
// Description:
//
//	Extends SingleLayer's ladders with a second bounding generator on each
//	side, mirrored across the domain face so the midpoint between the two
//	bounding generators lands exactly on the domain boundary. The first
//	layer's cells therefore stay finite and absorb exactly the space
//	between the rectangle and the domain.
//
// Algorithm Outline:
//  1. Build the interior+layer1 ladders as in SingleLayer.
//  2. Per dimension d:
//     - If the rectangle fills dom in d (both faces coincide), keep the
//     layer-1 ladder; the domain boundary already bounds it.
//     - Otherwise require the layer-1 generators strictly inside dom and
//     extend the ladder with 2*domMin-first and 2*domMax-last.
//  3. Points = Cartesian product of the extended ladders under opts.Order.
//
// When the rectangle fills the whole domain the result degenerates to
// SingleLayer's: identical ladders, identical point set.
//
// Complexity: O(∏(cells[d]+4) · dim) time and space.
//
// Errors: everything SingleLayer returns, plus ErrLayerOutsideDomain when
// a second layer is required in some dimension but the first-layer
// generator lies on or outside the domain face there (the mirrored ladder
// would not be monotone; the rectangle leaves less than half a cell width
// of clearance).
func DoubleLayer(cells []int, rect grid.Hyperrect, dom grid.Domain, opts *Options) (*Tessellation, error) {
	o := withDefaults(opts)
	rectDom, err := resolveInputs(cells, rect, dom)
	if err != nil {
		return nil, err
	}
	layer1, err := layer1Ladders(cells, rectDom)
	if err != nil {
		return nil, err
	}

	// Stage 2 - mirror the outermost generators across the domain faces.
	layer2 := make([][]float64, len(layer1))
	for d := range layer1 {
		if rectDom[d] == dom[d] {
			layer2[d] = layer1[d]
			continue
		}
		first := layer1[d][0]
		last := layer1[d][len(layer1[d])-1]
		if first <= dom[d].Min || last >= dom[d].Max {
			return nil, fmt.Errorf("dimension %d: layer [%g, %g] vs domain [%g, %g]: %w",
				d, first, last, dom[d].Min, dom[d].Max, ErrLayerOutsideDomain)
		}
		extended := make([]float64, 0, len(layer1[d])+2)
		extended = append(extended, 2*dom[d].Min-first)
		extended = append(extended, layer1[d]...)
		extended = append(extended, 2*dom[d].Max-last)
		layer2[d] = extended
	}

	// Stage 3 - assemble the point set from the outermost ladders.
	points, err := grid.Cartesian(layer2, o.Order)
	if err != nil {
		return nil, err
	}

	return &Tessellation{
		Points: points,
		Layer1: layer1,
		Layer2: layer2,
		Rect:   rectDom,
		Domain: dom,
		Order:  o.Order,
	}, nil
}
