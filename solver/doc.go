// Package solver drives a chain.Chain to a near-fixed-point distribution
// under configurable seed/teleport semantics, yielding cooperatively so
// long runs do not monopolize a single-threaded host.
//
// Termination is checked in a fixed order each iteration: the iteration
// cap, then the convergence threshold, then the cooperative-yield budget.
// The solver never panics on non-convergence; it reports the final delta
// and lets the caller decide what to do with it.
package solver
