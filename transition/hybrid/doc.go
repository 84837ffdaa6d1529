// Package hybrid implements a symbolic/sparse transition.Store back-end:
// one reduced decision diagram per syntactic action, whose lower levels are
// materialized as sparse blocks instead of binary nodes all the way down to
// individual (state, choice, successor) cells.
//
// Nodes live in an explicit arena (node, indexed by int) rather than in a
// pointer graph, so the diagram can contain merged (and therefore cyclic,
// in a DAG-of-references sense) substructure without a garbage-collector
// cycle; traversal is recursion over arena indices. The arena is built by a
// standard trie-then-reduce construction: a leaf is inserted for every
// (state, choice) pair that has outgoing transitions, the trie is built
// over the bits of a combined state∥choice key, and identical subtrees are
// merged via a construction-time cache, producing the "reduced" property.
//
// Two leaf block formats exist: explicitBlock stores one float64 probability
// per successor column; dictBlock stores a small shared dictionary of
// distinct probabilities plus a packed uint16 index per successor column,
// for actions whose distributions repeat a handful of distinct values across
// many rows (e.g. uniform choices).
//
// The per-transition reward r_tsa and the action reward r_ta are carried
// inline in the block and leaf respectively, rather than through a second,
// separately co-iterated reward diagram: both would be built from, and
// consumed alongside, the same (state, choice) leaves, so folding the
// reward payload into the transition leaf preserves the visitor-level
// semantics (ChoiceVisitor still receives r_ta and each Transition's RTsa)
// while avoiding two redundant arenas. A non-constant action-reward
// projection is still a fatal transition.ErrNonConstantActionReward,
// checked at construction via ProjectActionReward.
package hybrid
