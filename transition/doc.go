// Package transition defines the back-end-agnostic Store interface the
// quantile solver iterates over: T⁺ (choices with strictly positive reward
// contribution) and T⁰ (zero-reward choices).
//
// Two concrete back-ends implement Store, in sibling packages so neither one
// needs to import the other:
//
//   - transition/sparse: four arrays per matrix (row offsets,
//     choice offsets, columns, probabilities), the row-grouped sparse form.
//   - transition/hybrid: a reduced decision diagram per syntactic action,
//     whose lower layers are materialized sparse blocks.
//
// Both back-ends MUST yield identical visitor sequences modulo grouping
// order within a choice; property tests in quantile/ assert this
// equivalence for small models expressible in both.
package transition
