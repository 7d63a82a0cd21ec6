package grid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Resolve turns the hyperrectangle description into a concrete Domain
// inside dom.
//
// The side lengths come from Widths when set, otherwise from Ratio*dom width
// per dimension. The resulting rectangle is centered on h.Center and must be
// contained in dom: a face may coincide with the matching domain face (that
// is what Ratio == 1 produces), but may never lie outside it.
//
// Errors:
//   - ErrEmptyDomain / ErrSpanOrder — dom itself is invalid, or the widths
//     produce a degenerate (zero- or negative-width) rectangle.
//   - ErrDimensionMismatch — Center or Widths length differs from dom's.
//   - ErrRatioRange — Ratio outside (0, 1] when Widths is nil.
//   - ErrRectNotContained — a face lies outside dom. Checked per face, so a
//     rectangle that pokes out in a single dimension is rejected.
//
// Complexity: O(dim).
func (h Hyperrect) Resolve(dom Domain) (Domain, error) {
	if err := dom.Validate(); err != nil {
		return nil, err
	}
	if len(h.Center) != dom.Dim() {
		return nil, fmt.Errorf("center has %d coordinates for a %d-dimensional domain: %w",
			len(h.Center), dom.Dim(), ErrDimensionMismatch)
	}

	widths := h.Widths
	if widths == nil {
		if h.Ratio <= 0 || h.Ratio > 1 {
			return nil, fmt.Errorf("ratio %g: %w", h.Ratio, ErrRatioRange)
		}
		widths = dom.Widths()
		floats.Scale(h.Ratio, widths)
	} else if len(widths) != dom.Dim() {
		return nil, fmt.Errorf("widths has %d entries for a %d-dimensional domain: %w",
			len(widths), dom.Dim(), ErrDimensionMismatch)
	}

	rect := make(Domain, dom.Dim())
	for i := range rect {
		rect[i] = Span{
			Min: h.Center[i] - widths[i]/2,
			Max: h.Center[i] + widths[i]/2,
		}
	}
	// Degenerate widths (zero, negative, NaN) surface here as span errors.
	if err := rect.Validate(); err != nil {
		return nil, err
	}
	for i := range rect {
		if rect[i].Min < dom[i].Min || rect[i].Max > dom[i].Max {
			return nil, fmt.Errorf("dimension %d [%g, %g] vs [%g, %g]: %w",
				i, rect[i].Min, rect[i].Max, dom[i].Min, dom[i].Max, ErrRectNotContained)
		}
	}

	return rect, nil
}

// FillsDomain reports whether the resolved rectangle rect occupies dom
// exactly, i.e. every face coincides. Tessellation code uses this to detect
// the Ratio == 1 case, where no bounding shell is needed because the domain
// boundary already bounds the interior cells.
func FillsDomain(rect, dom Domain) bool {
	if len(rect) != len(dom) {
		return false
	}
	for i := range rect {
		if rect[i].Min != dom[i].Min || rect[i].Max != dom[i].Max {
			return false
		}
	}

	return true
}
