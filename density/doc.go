// Package density assembles simple-function (piecewise-constant) probability
// densities over a tessellation's generator points and answers nearest-point
// queries against them.
//
// A SimpleFunction pairs every generator point with a probability mass:
// zero outside the target hyperrectangle, volume-proportional and normalized
// to sum to one inside. Uniform builds one from an existing point set and
// volume vector; UniformRegular and UniformFromSamples run the whole
// pipeline (tessellate, derive edges, estimate volumes, assemble) for the
// common uniform-over-a-rectangle case.
//
// Construction also builds a k-d tree over the points, so arbitrary query
// points (typically forward-model outputs) can be assigned to their owning
// cell with Nearest and NearestAll. The index is immutable after
// construction; a new point set means a new SimpleFunction.
//
// All entry points are pure and deterministic: identical inputs produce
// identical densities.
package density
