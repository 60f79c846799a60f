package hostgraph

import (
	"fmt"
	"iter"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/weightedgraph/scoregraph/address"
)

// MemGraph is a thread-safe in-memory directed multigraph. Nodes and edges
// are identified by opaque address.Address values; multiple edges may
// share the same (Src, Dst) pair, and self-loops are permitted.
//
// muNode guards the node catalog; muEdge guards the edge catalog and the
// incidence index. modCount is bumped, via atomic.Uint64, on every
// mutating call, mirroring the lvlath core.Graph nextEdgeID counter's use
// of sync/atomic for a lock-free, monotonically increasing witness.
type MemGraph struct {
	muNode sync.RWMutex
	muEdge sync.RWMutex

	nodes map[string]address.Address // raw -> Address
	edges map[string]Edge            // raw -> Edge

	// incident[nodeRaw] holds the raw addresses of every edge touching
	// nodeRaw (as Src, Dst, or both for a self-loop), for Neighbors.
	incident map[string][]string

	modCount atomic.Uint64
}

// NewGraph returns an empty MemGraph.
func NewGraph() *MemGraph {
	return &MemGraph{
		nodes:    make(map[string]address.Address),
		edges:    make(map[string]Edge),
		incident: make(map[string][]string),
	}
}

// AddNode inserts a into the node catalog. Idempotent: adding an address
// already present is a no-op and does not bump the modification counter.
func (g *MemGraph) AddNode(a address.Address) error {
	g.muNode.Lock()
	defer g.muNode.Unlock()

	if _, exists := g.nodes[a.Raw()]; exists {
		return nil
	}
	g.nodes[a.Raw()] = a
	g.modCount.Add(1)
	return nil
}

// AddEdge inserts e. Both e.Src and e.Dst must already be nodes of the
// graph (ErrUnknownNode); e.Address must not already be in use
// (ErrDuplicateEdge).
func (g *MemGraph) AddEdge(e Edge) error {
	g.muNode.RLock()
	_, srcOK := g.nodes[e.Src.Raw()]
	_, dstOK := g.nodes[e.Dst.Raw()]
	g.muNode.RUnlock()
	if !srcOK {
		return fmt.Errorf("hostgraph.AddEdge: src %s: %w", e.Src, ErrUnknownNode)
	}
	if !dstOK {
		return fmt.Errorf("hostgraph.AddEdge: dst %s: %w", e.Dst, ErrUnknownNode)
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	if _, exists := g.edges[e.Address.Raw()]; exists {
		return fmt.Errorf("hostgraph.AddEdge: %s: %w", e.Address, ErrDuplicateEdge)
	}
	g.edges[e.Address.Raw()] = e
	g.incident[e.Src.Raw()] = append(g.incident[e.Src.Raw()], e.Address.Raw())
	if e.Dst.Raw() != e.Src.Raw() {
		g.incident[e.Dst.Raw()] = append(g.incident[e.Dst.Raw()], e.Address.Raw())
	}
	g.modCount.Add(1)
	return nil
}

// HasNode reports whether a is a node of the graph.
func (g *MemGraph) HasNode(a address.Address) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[a.Raw()]
	return ok
}

// Nodes yields every node address in canonical order, restricted to
// prefix when non-nil.
func (g *MemGraph) Nodes(prefix *address.Address) iter.Seq[address.Address] {
	g.muNode.RLock()
	out := make([]address.Address, 0, len(g.nodes))
	for _, a := range g.nodes {
		if prefix == nil || a.HasPrefix(*prefix) {
			out = append(out, a)
		}
	}
	g.muNode.RUnlock()
	address.Sort(out)

	return func(yield func(address.Address) bool) {
		for _, a := range out {
			if !yield(a) {
				return
			}
		}
	}
}

// Edge looks up a single edge by address.
func (g *MemGraph) Edge(a address.Address) (Edge, bool) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	e, ok := g.edges[a.Raw()]
	return e, ok
}

// Edges yields every edge in canonical (sorted-by-address) order,
// restricted by any non-nil prefix arguments.
func (g *MemGraph) Edges(addressPrefix, srcPrefix, dstPrefix *address.Address) iter.Seq[Edge] {
	g.muEdge.RLock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		if addressPrefix != nil && !e.Address.HasPrefix(*addressPrefix) {
			continue
		}
		if srcPrefix != nil && !e.Src.HasPrefix(*srcPrefix) {
			continue
		}
		if dstPrefix != nil && !e.Dst.HasPrefix(*dstPrefix) {
			continue
		}
		out = append(out, e)
	}
	g.muEdge.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Address.Less(out[j].Address) })

	return func(yield func(Edge) bool) {
		for _, e := range out {
			if !yield(e) {
				return
			}
		}
	}
}

// Neighbors yields edges incident to target respecting dir and the
// optional node/edge prefixes. ok is false if target is not a node.
func (g *MemGraph) Neighbors(target address.Address, dir Direction, nodePrefix, edgePrefix *address.Address) (iter.Seq[Edge], bool) {
	g.muNode.RLock()
	_, known := g.nodes[target.Raw()]
	g.muNode.RUnlock()
	if !known {
		return nil, false
	}

	g.muEdge.RLock()
	raws := append([]string(nil), g.incident[target.Raw()]...)
	out := make([]Edge, 0, len(raws))
	for _, raw := range raws {
		e := g.edges[raw]
		if !edgeMatchesDirection(e, target, dir) {
			continue
		}
		if edgePrefix != nil && !e.Address.HasPrefix(*edgePrefix) {
			continue
		}
		if nodePrefix != nil {
			other := otherEndpoint(e, target)
			if !other.HasPrefix(*nodePrefix) {
				continue
			}
		}
		out = append(out, e)
	}
	g.muEdge.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Address.Less(out[j].Address) })

	return func(yield func(Edge) bool) {
		for _, e := range out {
			if !yield(e) {
				return
			}
		}
	}, true
}

// edgeMatchesDirection reports whether e should be visible from target
// under dir. A self-loop always matches, since it is simultaneously
// incoming and outgoing.
func edgeMatchesDirection(e Edge, target address.Address, dir Direction) bool {
	if e.Src.Equal(e.Dst) {
		return true
	}
	switch dir {
	case DirectionOut:
		return e.Src.Equal(target)
	case DirectionIn:
		return e.Dst.Equal(target)
	default:
		return true
	}
}

// otherEndpoint returns the endpoint of e that is not target; for a
// self-loop it returns target itself.
func otherEndpoint(e Edge, target address.Address) address.Address {
	if e.Src.Equal(target) {
		return e.Dst
	}
	return e.Src
}

// ModificationCount returns the number of mutations applied to g so far.
func (g *MemGraph) ModificationCount() uint64 {
	return g.modCount.Load()
}

// Equal reports whether other has the same node and edge sets as g,
// independent of construction order or modification history.
func (g *MemGraph) Equal(other Graph) bool {
	og, ok := other.(*MemGraph)
	if !ok {
		return false
	}

	g.muNode.RLock()
	og.muNode.RLock()
	nodesEqual := len(g.nodes) == len(og.nodes)
	if nodesEqual {
		for raw := range g.nodes {
			if _, ok := og.nodes[raw]; !ok {
				nodesEqual = false
				break
			}
		}
	}
	g.muNode.RUnlock()
	og.muNode.RUnlock()
	if !nodesEqual {
		return false
	}

	g.muEdge.RLock()
	og.muEdge.RLock()
	defer g.muEdge.RUnlock()
	defer og.muEdge.RUnlock()

	if len(g.edges) != len(og.edges) {
		return false
	}
	for raw, e := range g.edges {
		oe, ok := og.edges[raw]
		if !ok || oe.Src.Raw() != e.Src.Raw() || oe.Dst.Raw() != e.Dst.Raw() {
			return false
		}
	}
	return true
}
