// Package serial implements the canonical external form of a
// scoregraph.Overlay: a versioned envelope wrapping the host graph's
// canonical JSON alongside scores and edge weights in canonical
// (sorted-address) order. Encode and Decode are the sole entry points;
// Decode takes a graph-decoder function so this package stays independent
// of any one hostgraph.Graph implementation.
package serial
