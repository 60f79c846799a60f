package scoregraph

import (
	"fmt"
	"iter"

	"github.com/weightedgraph/scoregraph/address"
	"github.com/weightedgraph/scoregraph/hostgraph"
)

func sliceSeq[T any](items []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

// Nodes yields {address, score} for every node matching opts, in
// canonical order. A nil opts matches every node; a non-nil opts with a
// nil Prefix is ErrInvalidOptions.
func (o *Overlay) Nodes(opts *NodesOptions) (iter.Seq[NodeScore], error) {
	if err := o.checkGraph(); err != nil {
		return nil, err
	}
	var prefix *address.Address
	if opts != nil {
		if opts.Prefix == nil {
			return nil, ErrInvalidOptions
		}
		prefix = opts.Prefix
	}

	o.mu.RLock()
	var items []NodeScore
	for a := range o.graph.Nodes(prefix) {
		items = append(items, NodeScore{Address: a, Score: o.scores[a.Raw()]})
	}
	o.mu.RUnlock()
	return sliceSeq(items), nil
}

// Node looks up a single node's current score. ok is false if a is not a
// node of the overlay.
func (o *Overlay) Node(a address.Address) (NodeScore, bool, error) {
	if err := o.checkGraph(); err != nil {
		return NodeScore{}, false, err
	}
	o.mu.RLock()
	defer o.mu.RUnlock()
	score, ok := o.scores[a.Raw()]
	if !ok {
		return NodeScore{}, false, nil
	}
	return NodeScore{Address: a, Score: score}, true, nil
}

// Edges yields {edge, weight} for every edge matching opts, in canonical
// order. A nil opts matches every edge; a non-nil opts requires all three
// prefixes to be set (ErrInvalidOptions otherwise).
func (o *Overlay) Edges(opts *EdgesOptions) (iter.Seq[WeightedEdge], error) {
	if err := o.checkGraph(); err != nil {
		return nil, err
	}
	var addressPrefix, srcPrefix, dstPrefix *address.Address
	if opts != nil {
		if opts.AddressPrefix == nil || opts.SrcPrefix == nil || opts.DstPrefix == nil {
			return nil, ErrInvalidOptions
		}
		addressPrefix, srcPrefix, dstPrefix = opts.AddressPrefix, opts.SrcPrefix, opts.DstPrefix
	}

	var items []WeightedEdge
	for e := range o.graph.Edges(addressPrefix, srcPrefix, dstPrefix) {
		items = append(items, WeightedEdge{Edge: e, Weight: o.weights[e.Address.Raw()]})
	}
	return sliceSeq(items), nil
}

// Edge looks up a single edge by address. ok is false if a is not an edge
// of the overlay.
func (o *Overlay) Edge(a address.Address) (WeightedEdge, bool, error) {
	if err := o.checkGraph(); err != nil {
		return WeightedEdge{}, false, err
	}
	e, ok := o.graph.Edge(a)
	if !ok {
		return WeightedEdge{}, false, nil
	}
	return WeightedEdge{Edge: e, Weight: o.weights[e.Address.Raw()]}, true, nil
}

// Neighbors yields the score-decomposition term for every edge incident to
// target matching opts. A nil opts means DirectionAny with no prefix
// restriction; a non-nil opts requires both prefixes to be set
// (ErrInvalidOptions otherwise). Returns ErrUnknownNode if target is not a
// node of the overlay.
func (o *Overlay) Neighbors(target address.Address, opts *NeighborOptions) (iter.Seq[NeighborContribution], error) {
	if err := o.checkGraph(); err != nil {
		return nil, err
	}
	dir := hostgraph.DirectionAny
	var nodePrefix, edgePrefix *address.Address
	if opts != nil {
		dir = opts.Direction
		if opts.NodePrefix == nil || opts.EdgePrefix == nil {
			return nil, ErrInvalidOptions
		}
		nodePrefix, edgePrefix = opts.NodePrefix, opts.EdgePrefix
	}

	o.mu.RLock()
	defer o.mu.RUnlock()

	seq, ok := o.graph.Neighbors(target, dir, nodePrefix, edgePrefix)
	if !ok {
		return nil, fmt.Errorf("scoregraph.Neighbors: %s: %w", target, ErrUnknownNode)
	}

	var items []NeighborContribution
	for e := range seq {
		other := otherEndpoint(e, target)
		w := o.weights[e.Address.Raw()]

		var raw float64
		if e.Dst.Equal(target) {
			raw += w.ToWeight
		}
		if e.Src.Equal(target) {
			raw += w.FroWeight
		}

		otherScore := o.scores[other.Raw()]
		contribution := otherScore * raw / o.totalOut[other.Raw()]

		items = append(items, NeighborContribution{
			ScoredNode:        NodeScore{Address: other, Score: otherScore},
			WeightedEdge:      WeightedEdge{Edge: e, Weight: w},
			ScoreContribution: contribution,
		})
	}
	return sliceSeq(items), nil
}

// otherEndpoint returns the endpoint of e that is not target; for a
// self-loop it returns target itself.
func otherEndpoint(e hostgraph.Edge, target address.Address) address.Address {
	if e.Src.Equal(target) {
		return e.Dst
	}
	return e.Src
}

// SyntheticLoopScoreContribution returns
// score(target) * syntheticLoopWeight / totalOutWeight(target).
func (o *Overlay) SyntheticLoopScoreContribution(target address.Address) (float64, error) {
	if err := o.checkGraph(); err != nil {
		return 0, err
	}
	o.mu.RLock()
	score, ok := o.scores[target.Raw()]
	o.mu.RUnlock()
	if !ok {
		return 0, fmt.Errorf("scoregraph.SyntheticLoopScoreContribution: %s: %w", target, ErrUnknownNode)
	}
	total, err := o.TotalOutWeight(target)
	if err != nil {
		return 0, err
	}
	return score * o.syntheticLoopWeight / total, nil
}
