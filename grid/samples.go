package grid

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// UniformSamples draws n points uniformly from dom, one row per point, using
// the caller's random source. Passing the source explicitly keeps
// reproducibility in the caller's hands; there is no fallback to a global
// generator, so a nil src is rejected with ErrNilSource.
//
// The matrix is filled column by column, so for a fixed seed the cloud is
// identical across runs regardless of dimension count.
//
// Complexity: O(n·dim).
func UniformSamples(dom Domain, n int, src rand.Source) (*mat.Dense, error) {
	if err := dom.Validate(); err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, ErrSampleCount
	}
	if src == nil {
		return nil, ErrNilSource
	}

	samples := mat.NewDense(n, dom.Dim(), nil)
	for d, s := range dom {
		u := distuv.Uniform{Min: s.Min, Max: s.Max, Src: src}
		for i := 0; i < n; i++ {
			samples.Set(i, d, u.Rand())
		}
	}

	return samples, nil
}
