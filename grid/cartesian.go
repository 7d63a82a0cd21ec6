package grid

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Linspace returns n evenly spaced values from lo to hi inclusive.
// Returns ErrLinspaceCount when n < 2 and ErrSpanOrder when lo > hi.
func Linspace(lo, hi float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrLinspaceCount)
	}
	if lo > hi {
		return nil, fmt.Errorf("[%g, %g]: %w", lo, hi, ErrSpanOrder)
	}

	return floats.Span(make([]float64, n), lo, hi), nil
}

// Cartesian builds the full Cartesian product of the per-dimension ladders,
// flattened under order. The result has one row per combination and one
// column per dimension; under RowMajor the last ladder varies fastest, under
// ColMajor the first.
//
// Returns ErrEmptyDomain for an empty ladder set, ErrEmptyLadder (wrapped
// with the dimension) for a dimension with no values, and ErrOrderUnknown
// for an undefined order.
//
// Complexity: O(total·dim) time and memory, total = ∏ len(ladders[d]).
func Cartesian(ladders [][]float64, order Order) (*mat.Dense, error) {
	if len(ladders) == 0 {
		return nil, ErrEmptyDomain
	}
	if !order.valid() {
		return nil, fmt.Errorf("%v: %w", order, ErrOrderUnknown)
	}
	dims := make([]int, len(ladders))
	for d, l := range ladders {
		if len(l) == 0 {
			return nil, fmt.Errorf("dimension %d: %w", d, ErrEmptyLadder)
		}
		dims[d] = len(l)
	}

	n := total(dims)
	points := mat.NewDense(n, len(ladders), nil)
	sub := make([]int, len(ladders))
	for i := 0; i < n; i++ {
		multiIndexInto(sub, i, dims, order)
		row := points.RawRowView(i)
		for d := range sub {
			row[d] = ladders[d][sub[d]]
		}
	}

	return points, nil
}

// FlatIndex converts a multi-index into a flat index under order.
// It is the inverse of MultiIndex for the same dims and order.
//
// Returns ErrDimensionMismatch when len(sub) != len(dims), ErrDimSize for a
// non-positive dimension size, ErrIndexRange for an out-of-range subscript,
// and ErrOrderUnknown for an undefined order.
func FlatIndex(sub, dims []int, order Order) (int, error) {
	if err := checkDims(dims, order); err != nil {
		return 0, err
	}
	if len(sub) != len(dims) {
		return 0, fmt.Errorf("sub has %d entries for %d dimensions: %w",
			len(sub), len(dims), ErrDimensionMismatch)
	}
	for d := range sub {
		if sub[d] < 0 || sub[d] >= dims[d] {
			return 0, fmt.Errorf("sub[%d]=%d outside [0, %d): %w", d, sub[d], dims[d], ErrIndexRange)
		}
	}

	idx := 0
	switch order {
	case RowMajor:
		for d := 0; d < len(dims); d++ {
			idx = idx*dims[d] + sub[d]
		}
	case ColMajor:
		for d := len(dims) - 1; d >= 0; d-- {
			idx = idx*dims[d] + sub[d]
		}
	}

	return idx, nil
}

// MultiIndex converts a flat index into a fresh multi-index under order.
// It is the inverse of FlatIndex for the same dims and order.
//
// Returns ErrDimSize, ErrOrderUnknown, or ErrIndexRange when idx falls
// outside [0, ∏dims).
func MultiIndex(idx int, dims []int, order Order) ([]int, error) {
	if err := checkDims(dims, order); err != nil {
		return nil, err
	}
	if idx < 0 || idx >= total(dims) {
		return nil, fmt.Errorf("index %d outside [0, %d): %w", idx, total(dims), ErrIndexRange)
	}

	sub := make([]int, len(dims))
	multiIndexInto(sub, idx, dims, order)

	return sub, nil
}

// multiIndexInto writes idx's multi-index into sub without validation.
// Callers guarantee idx ∈ [0, total(dims)) and len(sub) == len(dims).
func multiIndexInto(sub []int, idx int, dims []int, order Order) {
	switch order {
	case RowMajor:
		for d := len(dims) - 1; d >= 0; d-- {
			sub[d] = idx % dims[d]
			idx /= dims[d]
		}
	case ColMajor:
		for d := 0; d < len(dims); d++ {
			sub[d] = idx % dims[d]
			idx /= dims[d]
		}
	}
}

// total returns the product of the per-dimension sizes.
func total(dims []int) int {
	n := 1
	for _, v := range dims {
		n *= v
	}

	return n
}

// checkDims validates a dims/order pair shared by FlatIndex and MultiIndex.
func checkDims(dims []int, order Order) error {
	if len(dims) == 0 {
		return ErrEmptyDomain
	}
	if !order.valid() {
		return fmt.Errorf("%v: %w", order, ErrOrderUnknown)
	}
	for d, v := range dims {
		if v <= 0 {
			return fmt.Errorf("dims[%d]=%d: %w", d, v, ErrDimSize)
		}
	}

	return nil
}
