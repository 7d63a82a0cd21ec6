package prob

import (
	"fmt"
	"sort"
)

// HighestProbability extracts the samples that jointly carry a requested
// share of a result's probability.
//
// Description:
//
//	Samples are ranked by descending probability, ties resolved by
//	ascending sample index so the ranking is deterministic. Zero-probability
//	samples never enter the support. The support is the longest prefix of
//	the ranking whose cumulative probability stays within top, except that
//	the single highest-probability sample is always kept even when it alone
//	exceeds top.
//
// Algorithm Outline:
//
//	Stage 1 - collect the indices of positive-probability samples.
//	Stage 2 - stable-sort them by descending probability.
//	Stage 3 - walk the ranking, accumulating probability until adding the
//	          next sample would exceed top.
//
// Complexity: O(n log n) time, O(n) space for n samples.
//
// Errors:
//   - ErrNilResult if res is nil.
//   - ErrLengthMismatch if res.P and res.Volumes disagree in length.
//   - ErrPercentile if top lies outside (0, 1].
//   - ErrNoMass if every sample's probability is zero.
func HighestProbability(res *Result, top float64) (*Support, error) {
	if res == nil {
		return nil, ErrNilResult
	}
	if len(res.Volumes) != len(res.P) {
		return nil, fmt.Errorf("|P|=%d |Volumes|=%d: %w", len(res.P), len(res.Volumes), ErrLengthMismatch)
	}
	if !(top > 0 && top <= 1) {
		return nil, fmt.Errorf("top=%g: %w", top, ErrPercentile)
	}

	// Stage 1 - positive-probability samples only.
	order := make([]int, 0, len(res.P))
	for i, p := range res.P {
		if p > 0 {
			order = append(order, i)
		}
	}
	if len(order) == 0 {
		return nil, ErrNoMass
	}

	// Stage 2 - rank by probability; stability keeps equal-probability
	// samples in index order.
	sort.SliceStable(order, func(a, b int) bool {
		return res.P[order[a]] > res.P[order[b]]
	})

	// Stage 3 - longest prefix within top, never empty.
	keep := 0
	var cum float64
	for _, idx := range order {
		next := cum + res.P[idx]
		if next > top && keep > 0 {
			break
		}
		cum = next
		keep++
	}

	sup := &Support{
		Indices: order[:keep:keep],
		P:       make([]float64, keep),
		Volumes: make([]float64, keep),
	}
	for j, idx := range sup.Indices {
		sup.P[j] = res.P[idx]
		sup.Volumes[j] = res.Volumes[idx]
	}
	return sup, nil
}
