// Package mdpmodel assembles the states, choices and transitions of an MDP
// into the model vectors and transition stores the quantile solver consumes.
//
// Topology is staged on a core.Graph: one vertex per state, one edge per
// transition, so state/edge enumeration and self-loop support come from
// core.Graph directly rather than a bespoke adjacency structure.
// Per-state reward and partition membership, and each choice's action
// reward, are kept in the Builder's own maps; Edge.Metadata carries the
// owning choice index and the transition probability, so Build can regroup
// edges by (state, choice) when handing them to a transition.Store builder.
package mdpmodel
