// Package sparse implements the row-grouped sparse transition.Store
// back-end: four arrays per matrix (row offsets, choice offsets,
// columns, probabilities), plus a compatible sparse reward matrix aligned
// to the same choice structure. Built as a deterministic offset-table
// construction, the same discipline a CSR sparse matrix builder uses.
package sparse
