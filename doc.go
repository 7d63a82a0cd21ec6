// Package bet is your toolkit for measure-theoretic inverse problems —
// tessellate a parameter domain, hang a density on the cells, and push
// probability back through your model's samples.
//
// 🚀 What is BET?
//
//	A small, deterministic library that brings together:
//		• Grid primitives: domains, hyperrectangles, Cartesian lattices
//		• Bounding layers: Voronoi generator ladders with one or two guard rows
//		• Cell geometry: midpoint edges, regular edge sets, histogram volumes
//		• Densities: uniform simple-function approximations with fast lookup
//		• Inversion: per-sample probabilities and highest-probability supports
//
// ✨ Why choose BET?
//
//   - Reproducible – explicit random sources, no global state, stable orderings
//   - Honest numerics – typed errors instead of silent fallbacks on bad geometry
//   - Pure Go on gonum – dense matrices, k-d trees, no cgo
//   - Composable – every stage accepts plain matrices and returns plain slices
//
// Under the hood, everything is organized under four subpackages:
//
//	grid/    — domains, hyperrectangles, lattices & uniform sampling
//	voronoi/ — bounding-layer tessellations, edges & cell volumes
//	density/ — simple-function densities + nearest-generator queries
//	prob/    — inverse probabilities & highest-probability supports
//
// Quick ASCII example:
//
//	┌───────────────┐  domain
//	│   ┌───┬───┐   │
//	│   │ ∎ │ ∎ │   │  a centered rectangle, two cells per side,
//	│   ├───┼───┤   │  each interior cell carrying mass 1/4
//	│   │ ∎ │ ∎ │   │
//	│   └───┴───┘   │
//	└───────────────┘
//
// Dive into examples/ for two end-to-end walkthroughs: the tessellation
// pipeline on a unit square, and the inversion of a random linear map.
//
//	go get github.com/leiyangcq/BET
package bet
