// Package mdpvec provides the immutable vector types that the quantile
// solver reads as input: dense and run-length-compressed probability/reward
// vectors over a fixed state space, bitsets for the "one"/"zero" qualitative
// partitions, and the result vectors returned to the caller.
//
// Overview:
//
//   - Vector is a tagged-variant interface with two implementations, Dense
//     and RunLength, so the rest of the system is polymorphic over either
//     representation without a type switch at every call site.
//   - Bitset is a packed []uint64 membership set used for the "one" (O) and
//     "zero" (Z) state partitions.
//   - ModelVectors bundles every per-state input the solver needs: the base
//     vector X0, state rewards, per-state max-reward (for window derivation),
//     the infinity vector X∞, and the O/Z bitsets.
//   - ResultVector is the Q_t : S → ℕ ∪ {+∞} ∪ {⊥} map for a single
//     threshold, keyed by state index.
//
// Dense, Bitset and ResultVector have mutating methods (Set, Fill, Clear,
// Decide), which the solver uses on its own scratch and result vectors; the
// solver never mutates a Vector, Bitset, or ModelVectors it was handed.
package mdpvec
