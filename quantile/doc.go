// Package quantile implements the reward-bounded probabilistic reachability
// quantile fixed-point solver: the nested iteration that couples a bounded,
// rolling-window recurrence over reward levels (Ring, posstep.go) with an
// inner least-fixed-point over the zero-reward sub-MDP (innersolve.go),
// driven by Solve (driver.go) until every state of interest has crossed its
// thresholds.
//
// Scheduling model: single-threaded, non-suspending. Solve runs to
// completion on the calling goroutine; it performs no cooperative yield and
// starts no other goroutine. All mutable state — the Ring, the scratch
// structs for each inner step, and the result vectors — is owned by the
// Solve call and released on return; input Stores and ModelVectors are
// borrowed immutably.
package quantile
