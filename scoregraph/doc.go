// Package scoregraph implements the scored-graph overlay: the public
// engine type importers construct over a hostgraph.Graph (or any type
// satisfying hostgraph.Graph) plus an edge-evaluator, then drive to a
// stationary score distribution via Run.
//
// An Overlay never mutates its host graph. It holds, as derived state, an
// edge-weight map (built once from the evaluator at construction), a
// per-node score map (uniform at construction, overwritten wholesale by
// Run), and a cached total-out-weight per node. Every public method
// compares the host graph's current ModificationCount to the snapshot
// taken at construction and fails with ErrGraphModified on mismatch —
// the sole defense against the host graph changing out from under the
// overlay.
package scoregraph
