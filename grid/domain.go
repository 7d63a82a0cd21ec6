package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Dim returns the number of dimensions.
func (d Domain) Dim() int { return len(d) }

// Validate checks that the domain has at least one dimension and that every
// span has finite bounds with the minimum strictly below the maximum. NaN
// bounds fail the order comparison and are rejected; infinite bounds would
// poison width arithmetic and are rejected too.
// Returns ErrEmptyDomain or ErrSpanOrder (wrapped with the offending
// dimension).
func (d Domain) Validate() error {
	if len(d) == 0 {
		return ErrEmptyDomain
	}
	for i, s := range d {
		if !(s.Min < s.Max) || math.IsInf(s.Min, 0) || math.IsInf(s.Max, 0) {
			return fmt.Errorf("dimension %d [%g, %g]: %w", i, s.Min, s.Max, ErrSpanOrder)
		}
	}

	return nil
}

// Widths returns a fresh slice of per-dimension widths.
func (d Domain) Widths() []float64 {
	w := make([]float64, len(d))
	for i, s := range d {
		w[i] = s.Width()
	}

	return w
}

// Center returns a fresh slice with the midpoint of every span.
func (d Domain) Center() []float64 {
	c := make([]float64, len(d))
	for i, s := range d {
		c[i] = s.Min + s.Width()/2
	}

	return c
}

// Contains reports whether p lies inside the domain, inclusive at every
// face. Points of mismatched dimensionality are never contained.
func (d Domain) Contains(p []float64) bool {
	if len(p) != len(d) {
		return false
	}
	for i, s := range d {
		if !s.Contains(p[i]) {
			return false
		}
	}

	return true
}

// Measure returns the domain's volume, the product of its widths.
func (d Domain) Measure() float64 {
	return floats.Prod(d.Widths())
}

// Unit returns the unit hypercube [0,1]^dim.
func Unit(dim int) Domain {
	d := make(Domain, dim)
	for i := range d {
		d[i] = Span{Min: 0, Max: 1}
	}

	return d
}

// FromSamples derives the tight bounding domain of a sample cloud: per
// column, the span from the smallest to the largest observed value. This is
// how a data-space domain is recovered from forward-map outputs before
// partitioning them.
//
// Returns ErrNoSamples for a nil or empty matrix, and ErrSpanOrder (via
// Validate) when a column is constant, since a zero-width span cannot carry
// a tessellation.
func FromSamples(data *mat.Dense) (Domain, error) {
	if data == nil {
		return nil, ErrNoSamples
	}
	rows, cols := data.Dims()
	if rows == 0 || cols == 0 {
		return nil, ErrNoSamples
	}

	dom := make(Domain, cols)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, data)
		dom[j] = Span{Min: floats.Min(col), Max: floats.Max(col)}
	}
	if err := dom.Validate(); err != nil {
		return nil, err
	}

	return dom, nil
}
