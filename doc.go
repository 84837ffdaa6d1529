// Package rquantile computes reward-bounded probabilistic reachability
// quantiles over finite Markov decision processes.
//
// Given a partition of an MDP's choices into a positive-reward set T+ and a
// zero-reward set T0, a qualitative one/zero state partition, and a set of
// probability thresholds, rquantile answers: for each state of interest,
// what is the smallest cumulative reward bound i under which the optimal
// (minimum or maximum over schedulers) probability of reaching the target
// within reward i satisfies a given threshold?
//
// Package layout:
//
//	mdpvec/    — dense/run-length state vectors, bitsets, model vectors
//	transition/ — the Store interface plus sparse and hybrid back-ends
//	quantile/  — the level ring, positive-reward step, zero-reward inner
//	             solver and the Solve entry point
//	trace/     — an optional HTML iteration exporter for offline inspection
//	mdpmodel/  — assembles states/choices/transitions into the vectors and
//	             stores quantile.Solve consumes
//	core/      — the underlying graph primitives mdpmodel stages data on
//	mdpbuilder/ — deterministic MDP fixture generators (chain, cycle,
//	             complete, random sparse), exercised by their own tests
package rquantile
