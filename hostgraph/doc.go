// Package hostgraph defines the host-graph contract that scoregraph's
// compiler and overlay consume, plus MemGraph, a concrete thread-safe
// in-memory implementation of it.
//
// MemGraph is a directed multigraph: node and edge addresses are opaque
// address.Address values, multiple edges may share the same (src, dst)
// pair, and self-loops are permitted. Every mutation bumps a monotonic
// modification counter; scoregraph uses this to detect "graph changed out
// from under me" between overlay construction and later operations.
package hostgraph
