// Package grid provides the coordinate substrate for regular Voronoi
// tessellations of hyperrectangular domains:
//
//   - Domain / Span — ordered per-dimension (min, max) bounds with strict
//     validation (zero-width and inverted spans are rejected)
//   - Hyperrect — a region of interest inside a Domain, given as a center
//     plus either a uniform width ratio or explicit per-dimension widths
//   - Cartesian — dimension-generic Cartesian products of per-axis
//     coordinate ladders, flattened under an explicit Order contract
//   - FlatIndex / MultiIndex — the flattened-index ↔ multi-index mapping
//     that downstream volume and density code relies on
//   - UniformSamples — seeded uniform sample clouds over a Domain
//
// Ordering is never implicit: every routine that flattens or unflattens a
// grid takes an Order value (RowMajor mirrors numpy's "ij" meshgrid plus
// ravel; ColMajor is its transpose-ordered dual). Two grids built with the
// same ladders and the same Order are positionally identical, which is the
// contract the voronoi and density packages depend on.
//
// All functions are pure: inputs are treated as read-only, results are
// freshly allocated, and nothing in this package keeps global state. The
// only stochastic entry point, UniformSamples, requires an explicit
// rand.Source so that reproducibility is the caller's decision.
package grid
