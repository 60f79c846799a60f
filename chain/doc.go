// Package chain implements the sparse column-stochastic Markov chain kernel
// that powers scoregraph's power-iteration solver.
//
// A Chain is represented as a sequence of columns; column j holds the
// nonzero rows i and transition probabilities P(i ← j) for moving from
// node j to node i in one step. Every column must sum to 1 within
// ColumnEpsilon — the kernel validates this once, at construction, rather
// than on every step.
//
// Complexity: New is O(Σ|column|); Step is O(Σ|column|) per call; MaxDelta
// is O(n).
package chain
