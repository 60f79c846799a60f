package hostgraph

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/weightedgraph/scoregraph/address"
)

// wireEdge is the canonical JSON shape of one Edge.
type wireEdge struct {
	Address string `json:"address"`
	Src     string `json:"src"`
	Dst     string `json:"dst"`
}

// wireGraph is the canonical JSON shape of a MemGraph: nodes and edges in
// sorted-address order, so that two graphs with identical topology built
// in different orders serialize byte-identically.
type wireGraph struct {
	Nodes []string   `json:"nodes"`
	Edges []wireEdge `json:"edges"`
}

// CanonicalJSON encodes g as sorted-order JSON. Two MemGraphs with equal
// node/edge sets, however constructed, produce byte-identical output.
func (g *MemGraph) CanonicalJSON() ([]byte, error) {
	g.muNode.RLock()
	nodeAddrs := make([]address.Address, 0, len(g.nodes))
	for _, a := range g.nodes {
		nodeAddrs = append(nodeAddrs, a)
	}
	g.muNode.RUnlock()
	address.Sort(nodeAddrs)

	g.muEdge.RLock()
	edges := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		edges = append(edges, e)
	}
	g.muEdge.RUnlock()

	w := wireGraph{
		Nodes: make([]string, len(nodeAddrs)),
		Edges: make([]wireEdge, len(edges)),
	}
	for i, a := range nodeAddrs {
		w.Nodes[i] = a.Raw()
	}
	sortEdgesByAddress(edges)
	for i, e := range edges {
		w.Edges[i] = wireEdge{Address: e.Address.Raw(), Src: e.Src.Raw(), Dst: e.Dst.Raw()}
	}

	return json.Marshal(w)
}

// DecodeJSON reconstructs a MemGraph from the form CanonicalJSON produces.
func DecodeJSON(data []byte) (*MemGraph, error) {
	var w wireGraph
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("hostgraph.DecodeJSON: %w", err)
	}

	g := NewGraph()
	for _, raw := range w.Nodes {
		if err := g.AddNode(rawAddress(raw)); err != nil {
			return nil, err
		}
	}
	for _, we := range w.Edges {
		e := Edge{Address: rawAddress(we.Address), Src: rawAddress(we.Src), Dst: rawAddress(we.Dst)}
		if err := g.AddEdge(e); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// rawAddress rebuilds an Address from its already-joined raw wire form.
// The wire form was produced by Address.Raw, so it is used verbatim rather
// than re-split into parts and rejoined.
func rawAddress(raw string) address.Address {
	return address.FromRaw(raw)
}

func sortEdgesByAddress(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool { return edges[i].Address.Less(edges[j].Address) })
}
