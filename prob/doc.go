// Package prob estimates inverse-problem probabilities on a sample cloud.
//
// Given a simple-function density over forward-model output space and the
// outputs of a batch of parameter samples, Compute assigns every sample its
// share of the density: the sample's owning cell is found by nearest-point
// lookup, and the cell's mass is split evenly among the samples that landed
// in it. Under the Monte-Carlo assumption each sample also stands for an
// equal share 1/n of the parameter domain's volume, so summing volumes over
// a set of samples estimates the measure of the region they occupy.
//
// HighestProbability extracts the support of the inverse solution: the
// samples that jointly carry a requested share of the probability, highest
// density first. Its Measure is the usual headline number of an inversion
// run, the fraction of the parameter domain the solution occupies.
//
// Everything is deterministic: identical densities and outputs produce
// identical probabilities, and ties in the support ordering resolve by
// sample index.
package prob
