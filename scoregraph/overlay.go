package scoregraph

import (
	"fmt"
	"sync"

	"github.com/weightedgraph/scoregraph/address"
	"github.com/weightedgraph/scoregraph/compiler"
	"github.com/weightedgraph/scoregraph/hostgraph"
)

// Overlay wraps a hostgraph.Graph with derived, mutable state: per-edge
// weights (fixed at construction), per-node scores (overwritten wholesale
// by Run), and each node's cached total-out-weight. mu guards scores,
// since Run is the only method that mutates overlay state after
// construction.
type Overlay struct {
	graph hostgraph.Graph

	syntheticLoopWeight float64
	modSnapshot         uint64

	weights  map[string]hostgraph.EdgeWeight
	totalOut map[string]float64

	mu     sync.RWMutex
	scores map[string]float64
}

// DefaultSyntheticLoopWeight is the conventional default synthetic
// self-loop weight for New.
const DefaultSyntheticLoopWeight = 1e-3

// New constructs an Overlay over graph using evaluator to assign a weight
// to every edge. syntheticLoopWeight must be strictly positive; pass
// DefaultSyntheticLoopWeight for the conventional default.
//
// New rejects an empty graph (ErrEmptyGraph), a non-positive loop weight
// (ErrInvalidLoopWeight), and any evaluator result that fails
// EdgeWeight.Valid (ErrInvalidWeight). On success, scores are initialized
// to uniform and the host graph's modification counter is snapshotted.
func New(graph hostgraph.Graph, evaluator hostgraph.Evaluator, syntheticLoopWeight float64) (*Overlay, error) {
	if syntheticLoopWeight <= 0 {
		return nil, ErrInvalidLoopWeight
	}

	order := compiler.NodeOrder(graph)
	if len(order) == 0 {
		return nil, ErrEmptyGraph
	}

	weights := make(map[string]hostgraph.EdgeWeight)
	for e := range graph.Edges(nil, nil, nil) {
		w, err := evaluator(e)
		if err != nil {
			return nil, fmt.Errorf("scoregraph.New: edge %s: %w", e.Address, err)
		}
		if !w.Valid() {
			return nil, fmt.Errorf("scoregraph.New: edge %s: %w", e.Address, ErrInvalidWeight)
		}
		weights[e.Address.Raw()] = w
	}

	totalOut := make(map[string]float64, len(order))
	for _, n := range order {
		total, err := compiler.TotalOutWeight(graph, weights, n, syntheticLoopWeight)
		if err != nil {
			return nil, fmt.Errorf("scoregraph.New: %w", err)
		}
		totalOut[n.Raw()] = total
	}

	scores := make(map[string]float64, len(order))
	uniform := 1.0 / float64(len(order))
	for _, n := range order {
		scores[n.Raw()] = uniform
	}

	return &Overlay{
		graph:               graph,
		syntheticLoopWeight: syntheticLoopWeight,
		modSnapshot:         graph.ModificationCount(),
		weights:             weights,
		totalOut:            totalOut,
		scores:              scores,
	}, nil
}

// FromState reconstructs an Overlay directly from already-known state,
// bypassing the evaluator. Used by the serial package to rebuild an
// Overlay from a deserialized envelope, where weights and scores are read
// off the wire rather than recomputed.
func FromState(graph hostgraph.Graph, weights map[string]hostgraph.EdgeWeight, scores map[string]float64, syntheticLoopWeight float64) (*Overlay, error) {
	if syntheticLoopWeight <= 0 {
		return nil, ErrInvalidLoopWeight
	}
	order := compiler.NodeOrder(graph)
	if len(order) == 0 {
		return nil, ErrEmptyGraph
	}

	totalOut := make(map[string]float64, len(order))
	for _, n := range order {
		total, err := compiler.TotalOutWeight(graph, weights, n, syntheticLoopWeight)
		if err != nil {
			return nil, fmt.Errorf("scoregraph.FromState: %w", err)
		}
		totalOut[n.Raw()] = total
	}

	scoresCopy := make(map[string]float64, len(scores))
	for k, v := range scores {
		scoresCopy[k] = v
	}
	weightsCopy := make(map[string]hostgraph.EdgeWeight, len(weights))
	for k, v := range weights {
		weightsCopy[k] = v
	}

	return &Overlay{
		graph:               graph,
		syntheticLoopWeight: syntheticLoopWeight,
		modSnapshot:         graph.ModificationCount(),
		weights:             weightsCopy,
		totalOut:            totalOut,
		scores:              scoresCopy,
	}, nil
}

// checkGraph is the guard every public operation runs first: the sole
// defense against the host graph changing out from under the overlay.
func (o *Overlay) checkGraph() error {
	if o.graph.ModificationCount() != o.modSnapshot {
		return ErrGraphModified
	}
	return nil
}

// Graph returns the host graph the overlay wraps.
func (o *Overlay) Graph() (hostgraph.Graph, error) {
	if err := o.checkGraph(); err != nil {
		return nil, err
	}
	return o.graph, nil
}

// SyntheticLoopWeight returns the configured constant.
func (o *Overlay) SyntheticLoopWeight() (float64, error) {
	if err := o.checkGraph(); err != nil {
		return 0, err
	}
	return o.syntheticLoopWeight, nil
}

// TotalOutWeight returns the cached total-out-weight for a, or
// ErrUnknownNode if a is not a node of the overlay.
func (o *Overlay) TotalOutWeight(a address.Address) (float64, error) {
	if err := o.checkGraph(); err != nil {
		return 0, err
	}
	total, ok := o.totalOut[a.Raw()]
	if !ok {
		return 0, fmt.Errorf("scoregraph.TotalOutWeight: %s: %w", a, ErrUnknownNode)
	}
	return total, nil
}

// WeightsSnapshot returns a copy of the edge-weight map, keyed by
// address.Address.Raw. Used by the serial package to encode an Overlay.
func (o *Overlay) WeightsSnapshot() (map[string]hostgraph.EdgeWeight, error) {
	if err := o.checkGraph(); err != nil {
		return nil, err
	}
	out := make(map[string]hostgraph.EdgeWeight, len(o.weights))
	for k, v := range o.weights {
		out[k] = v
	}
	return out, nil
}

// ScoresSnapshot returns a copy of the current score map, keyed by
// address.Address.Raw.
func (o *Overlay) ScoresSnapshot() (map[string]float64, error) {
	if err := o.checkGraph(); err != nil {
		return nil, err
	}
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := make(map[string]float64, len(o.scores))
	for k, v := range o.scores {
		out[k] = v
	}
	return out, nil
}
