package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leiyangcq/BET/grid"
)

// TestResolveRatio resolves a ratio-driven rectangle on the unit square.
func TestResolveRatio(t *testing.T) {
	dom := grid.Unit(2)
	h := grid.Hyperrect{Center: []float64{0.5, 0.5}, Ratio: 0.5}

	rect, err := h.Resolve(dom)
	require.NoError(t, err)
	assert.Equal(t, grid.Domain{{Min: 0.25, Max: 0.75}, {Min: 0.25, Max: 0.75}}, rect)
}

// TestResolveWidths resolves an explicit-widths rectangle, ignoring Ratio.
func TestResolveWidths(t *testing.T) {
	dom := grid.Unit(2)
	h := grid.Hyperrect{
		Center: []float64{0.5, 0.5},
		Widths: []float64{0.5, 0.2},
		Ratio:  42, // ignored when Widths is set
	}

	rect, err := h.Resolve(dom)
	require.NoError(t, err)
	assert.Equal(t, grid.Domain{{Min: 0.25, Max: 0.75}, {Min: 0.4, Max: 0.6}}, rect)
}

// TestResolveFullRatio lets the rectangle coincide with the whole domain.
// Face coincidence counts as contained.
func TestResolveFullRatio(t *testing.T) {
	dom := grid.Unit(2)
	h := grid.Hyperrect{Center: []float64{0.5, 0.5}, Ratio: 1}

	rect, err := h.Resolve(dom)
	require.NoError(t, err)
	assert.Equal(t, dom, rect)
	assert.True(t, grid.FillsDomain(rect, dom))
}

// TestResolveErrors covers the rejection paths.
func TestResolveErrors(t *testing.T) {
	dom := grid.Unit(2)

	cases := []struct {
		name string
		h    grid.Hyperrect
		err  error
	}{
		{
			"RatioTooLarge",
			grid.Hyperrect{Center: []float64{0.5, 0.5}, Ratio: 1.5},
			grid.ErrRatioRange,
		},
		{
			"RatioZero",
			grid.Hyperrect{Center: []float64{0.5, 0.5}},
			grid.ErrRatioRange,
		},
		{
			"RatioNegative",
			grid.Hyperrect{Center: []float64{0.5, 0.5}, Ratio: -0.25},
			grid.ErrRatioRange,
		},
		{
			"FullRatioOffCenter",
			grid.Hyperrect{Center: []float64{0.6, 0.5}, Ratio: 1},
			grid.ErrRectNotContained,
		},
		{
			"WidthsPokeOut",
			grid.Hyperrect{Center: []float64{0.9, 0.5}, Widths: []float64{0.4, 0.4}},
			grid.ErrRectNotContained,
		},
		{
			"CenterDimMismatch",
			grid.Hyperrect{Center: []float64{0.5}, Ratio: 0.5},
			grid.ErrDimensionMismatch,
		},
		{
			"WidthsDimMismatch",
			grid.Hyperrect{Center: []float64{0.5, 0.5}, Widths: []float64{0.5}},
			grid.ErrDimensionMismatch,
		},
		{
			"ZeroWidth",
			grid.Hyperrect{Center: []float64{0.5, 0.5}, Widths: []float64{0.5, 0}},
			grid.ErrSpanOrder,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.h.Resolve(dom)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestFillsDomain distinguishes exact face coincidence from a strict subset.
func TestFillsDomain(t *testing.T) {
	dom := grid.Unit(2)
	assert.True(t, grid.FillsDomain(grid.Unit(2), dom))

	inner := grid.Domain{{Min: 0.25, Max: 0.75}, {Min: 0, Max: 1}}
	assert.False(t, grid.FillsDomain(inner, dom))
	assert.False(t, grid.FillsDomain(grid.Unit(3), dom), "dimension mismatch never fills")
}
