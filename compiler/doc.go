// Package compiler builds a chain.Chain from a hostgraph.Graph: it fixes
// the canonical node order (nodes sorted lexicographically by address),
// computes each node's total out-weight (synthetic loop plus outgoing
// to-weights plus incoming fro-weights), and assembles one sparse column
// per node, normalized so every column sums to 1.
package compiler
