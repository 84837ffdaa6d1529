// Package mdpbuilder provides deterministic MDP fixture generators, exercised
// by this package's own tests.
//
// The design follows a graph-topology builder shape: a
// Constructor closure type applied in sequence by one orchestrator
// (BuildMDP), functional Option values resolving into an immutable config
// (random source, per-state reward/x0/infinity values and O/Z
// membership), and one file per topology
// (chain, cycle, complete, random sparse). The generators build on
// mdpmodel.Builder rather than a plain core.Graph, since every fixture here
// needs per-state rewards and O/Z membership, not just topology.
package mdpbuilder
