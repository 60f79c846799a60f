package hostgraph

import (
	"errors"
	"iter"

	"github.com/weightedgraph/scoregraph/address"
)

// Sentinel errors for Graph construction and mutation.
var (
	// ErrDuplicateNode indicates AddNode was called with an address already
	// present in the graph.
	ErrDuplicateNode = errors.New("hostgraph: node already exists")

	// ErrUnknownNode indicates an operation referenced a node address not
	// present in the graph.
	ErrUnknownNode = errors.New("hostgraph: unknown node")

	// ErrDuplicateEdge indicates AddEdge was called with an edge address
	// already present in the graph.
	ErrDuplicateEdge = errors.New("hostgraph: edge already exists")

	// ErrUnknownEdge indicates an operation referenced an edge address not
	// present in the graph.
	ErrUnknownEdge = errors.New("hostgraph: unknown edge")
)

// Direction selects which incident edges Neighbors considers relative to
// the target node.
type Direction int

const (
	// DirectionIn selects edges whose destination is the target.
	DirectionIn Direction = iota
	// DirectionOut selects edges whose source is the target.
	DirectionOut
	// DirectionAny selects edges incident in either direction.
	DirectionAny
)

// Edge is a record (Address, Src, Dst) of node/edge addresses. Since Graph
// is a multigraph, Address uniquely distinguishes otherwise-identical
// parallel edges.
type Edge struct {
	Address address.Address
	Src     address.Address
	Dst     address.Address
}

// Graph is the host-graph contract the rest of scoregraph depends on:
// node/edge iteration (optionally by prefix), point lookups, direction-
// and prefix-filtered neighbor queries, structural equality, canonical
// JSON, and a modification counter. Any type satisfying Graph — not only
// *hostgraph.MemGraph — may be wrapped by a scoregraph.Overlay.
type Graph interface {
	// Nodes yields every node address in canonical (sorted) order. If
	// prefix is non-nil, only addresses with that prefix are yielded.
	Nodes(prefix *address.Address) iter.Seq[address.Address]

	// HasNode reports whether a is a node of the graph.
	HasNode(a address.Address) bool

	// Edges yields every edge in canonical (sorted-by-address) order.
	// Any non-nil prefix argument restricts the corresponding field.
	Edges(addressPrefix, srcPrefix, dstPrefix *address.Address) iter.Seq[Edge]

	// Edge looks up a single edge by address.
	Edge(a address.Address) (Edge, bool)

	// Neighbors yields edges incident to target in the given direction,
	// restricted by the optional node/edge prefixes. ok is false if target
	// is not a node of the graph.
	Neighbors(target address.Address, dir Direction, nodePrefix, edgePrefix *address.Address) (seq iter.Seq[Edge], ok bool)

	// Equal reports whether other has the same nodes and edges as g,
	// irrespective of construction order or modification history.
	Equal(other Graph) bool

	// CanonicalJSON returns a byte-identical JSON encoding for any two
	// graphs with the same nodes and edges, regardless of construction
	// order.
	CanonicalJSON() ([]byte, error)

	// ModificationCount returns a counter that strictly increases on every
	// mutation. Callers use it to detect concurrent/out-of-band mutation.
	ModificationCount() uint64
}
