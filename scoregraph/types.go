package scoregraph

import (
	"github.com/weightedgraph/scoregraph/address"
	"github.com/weightedgraph/scoregraph/hostgraph"
)

// NodeScore pairs a node address with its current score.
type NodeScore struct {
	Address address.Address
	Score   float64
}

// WeightedEdge pairs an edge with its evaluated weight.
type WeightedEdge struct {
	Edge   hostgraph.Edge
	Weight hostgraph.EdgeWeight
}

// NeighborContribution is one term of a node's score decomposition: the
// other endpoint of an incident edge (or the target itself, for a loop),
// the edge and weight involved, and the portion of scoredNode's score
// flowing to the target along it.
type NeighborContribution struct {
	ScoredNode        NodeScore
	WeightedEdge      WeightedEdge
	ScoreContribution float64
}

// NodesOptions configures Nodes. A nil *NodesOptions matches every node.
// A non-nil NodesOptions with a nil Prefix is ErrInvalidOptions.
type NodesOptions struct {
	Prefix *address.Address
}

// EdgesOptions configures Edges. A nil *EdgesOptions matches every edge.
// A non-nil EdgesOptions requires all three prefixes to be set.
type EdgesOptions struct {
	AddressPrefix *address.Address
	SrcPrefix     *address.Address
	DstPrefix     *address.Address
}

// NeighborOptions configures Neighbors. A nil *NeighborOptions means
// DirectionAny with no prefix restriction. A non-nil NeighborOptions
// requires both prefixes to be set.
type NeighborOptions struct {
	Direction  hostgraph.Direction
	NodePrefix *address.Address
	EdgePrefix *address.Address
}
