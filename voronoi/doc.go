// Package voronoi builds regular layered tessellations of an axis-aligned
// hyperrectangle and turns them into finite per-cell volumes.
//
// # What lives here
//
// The tessellations are approximate Voronoi diagrams: every cell is the
// axis-aligned bin around one generator point, with bin edges at the
// midpoints between neighboring generators. For a regular grid the midpoint
// rule and the true Voronoi diagram agree, which is what makes the exact
// volume bookkeeping below possible.
//
// A tessellation starts from a hyperrectangle of interest (grid.Hyperrect)
// inside a surrounding domain. Along each dimension three ladder flavors
// exist:
//
//	interior        cells generator points tiling the rectangle
//	interior+layer1 the above plus one bounding generator on each side
//	interior+layer2 the above plus a second bounding generator on each
//	                side, mirrored across the domain face so the midpoint
//	                edge lands exactly on the domain boundary
//
// In one dimension, with two cells per edge on [0.25, 0.75] inside [0, 1]:
//
//	0        0.125   0.375   0.625   0.875       1
//	|          o       o       o       o         |
//	        layer1  interior interior layer1
//	|---^-------^-------^-------^--------^-------|
//	   edges at 0, 0.25, 0.5, 0.75, 1 (regular edges)
//
// The first layer makes the rectangle's boundary cells finite; the second
// layer pins their outer edges to the domain boundary, so the shell cells
// absorb exactly the space between the rectangle and the domain.
//
// # Construction
//
//   - SingleLayer: interior+layer1 generators and their Cartesian product.
//   - DoubleLayer: interior+layer2 generators; degenerates to SingleLayer
//     when the rectangle fills the whole domain.
//   - RegularEdges: the edge lattice directly, without going through points.
//   - EdgesFromPoints / PointsFromEdges: midpoint-rule conversion between
//     generator ladders and edge ladders.
//   - CellVolumes: per-cell volumes by histogramming points over an edge
//     lattice, normalized by the total point count.
//
// # Ordering contract
//
// Point sets, bins, and volume vectors are parallel arrays. They line up
// only when produced under the same grid.Order; Options.Order fixes it for
// a whole pipeline (RowMajor by default). CellVolumes resolves each point's
// bin individually, so its output is correct under either order, but
// downstream consumers that index volumes positionally must not mix orders.
//
// All functions are pure: inputs are read, never mutated, and identical
// inputs produce identical outputs.
package voronoi
