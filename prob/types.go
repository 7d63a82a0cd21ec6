package prob

import "gonum.org/v1/gonum/floats"

// Result holds the per-sample outcome of an inversion run. The three
// vectors are parallel: entry i describes the i-th output sample.
type Result struct {
	// P is each sample's probability, the owning cell's mass split evenly
	// among the samples that landed in that cell. Samples owned by a
	// zero-mass cell carry probability zero.
	P []float64

	// Volumes is each sample's Monte-Carlo volume share, 1/n for a run of
	// n samples.
	Volumes []float64

	// Cells records the index of the density point that owns each sample.
	Cells []int
}

// Len reports the number of samples in the result.
func (r *Result) Len() int { return len(r.P) }

// TotalMass sums the per-sample probabilities. Cells of the density that
// received no sample contribute nothing, so the total is at most the
// density's own mass.
func (r *Result) TotalMass() float64 { return floats.Sum(r.P) }

// Support is a high-probability subset of a result's samples, ordered by
// descending probability with ties resolved by ascending sample index.
type Support struct {
	// Indices are the positions of the kept samples in the originating
	// result.
	Indices []int

	// P holds the kept samples' probabilities, aligned with Indices.
	P []float64

	// Volumes holds the kept samples' volume shares, aligned with Indices.
	Volumes []float64
}

// Len reports the number of samples in the support.
func (s *Support) Len() int { return len(s.Indices) }

// TotalMass sums the probabilities carried by the support.
func (s *Support) TotalMass() float64 { return floats.Sum(s.P) }

// Measure estimates the volume of the region the support occupies by
// summing its samples' Monte-Carlo volume shares.
func (s *Support) Measure() float64 { return floats.Sum(s.Volumes) }
