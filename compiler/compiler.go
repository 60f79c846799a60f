package compiler

import (
	"fmt"
	"sort"

	"github.com/weightedgraph/scoregraph/address"
	"github.com/weightedgraph/scoregraph/chain"
	"github.com/weightedgraph/scoregraph/hostgraph"
)

// NodeOrder returns every node address of g, sorted lexicographically.
// This is the single canonical order the chain and the serializer both
// rely on; it must never be derived separately in more than one place.
func NodeOrder(g hostgraph.Graph) []address.Address {
	var order []address.Address
	for a := range g.Nodes(nil) {
		order = append(order, a)
	}
	return order
}

// TotalOutWeight computes syntheticLoopWeight + Σ toWeight(out-edges) +
// Σ froWeight(in-edges) for node. weights must contain an entry for every
// edge incident to node.
func TotalOutWeight(g hostgraph.Graph, weights map[string]hostgraph.EdgeWeight, node address.Address, syntheticLoopWeight float64) (float64, error) {
	seq, ok := g.Neighbors(node, hostgraph.DirectionAny, nil, nil)
	if !ok {
		return 0, fmt.Errorf("compiler.TotalOutWeight: %s: %w", node, hostgraph.ErrUnknownNode)
	}

	total := syntheticLoopWeight
	for e := range seq {
		w, ok := weights[e.Address.Raw()]
		if !ok {
			return 0, fmt.Errorf("compiler.TotalOutWeight: edge %s: %w", e.Address, ErrMissingWeight)
		}
		if e.Src.Equal(node) {
			total += w.ToWeight
		}
		if e.Dst.Equal(node) {
			total += w.FroWeight
		}
	}
	return total, nil
}

// Compile builds the canonical node order and the sparse chain induced by
// g's edges plus a synthetic self-loop of weight syntheticLoopWeight at
// every node. weights must contain an entry for every edge g reports.
//
// Returns the canonical order, each node's total out-weight (keyed by
// address.Raw), and the resulting chain. Column j of the chain corresponds
// to order[j]; every column sums to 1 because it is divided by the
// corresponding node's (necessarily positive) total out-weight.
func Compile(g hostgraph.Graph, weights map[string]hostgraph.EdgeWeight, syntheticLoopWeight float64) ([]address.Address, map[string]float64, *chain.Chain, error) {
	order := NodeOrder(g)
	n := len(order)
	if n == 0 {
		return nil, nil, nil, ErrEmptyGraph
	}

	index := make(map[string]int, n)
	for i, a := range order {
		index[a.Raw()] = i
	}

	totalOut := make(map[string]float64, n)
	columns := make([]chain.Column, n)

	for j, node := range order {
		total, err := TotalOutWeight(g, weights, node, syntheticLoopWeight)
		if err != nil {
			return nil, nil, nil, err
		}
		totalOut[node.Raw()] = total

		raw := map[int]float64{j: syntheticLoopWeight}
		seq, _ := g.Neighbors(node, hostgraph.DirectionAny, nil, nil)
		for e := range seq {
			w, ok := weights[e.Address.Raw()]
			if !ok {
				return nil, nil, nil, fmt.Errorf("compiler.Compile: edge %s: %w", e.Address, ErrMissingWeight)
			}
			if e.Src.Equal(node) {
				i := index[e.Dst.Raw()]
				raw[i] += w.ToWeight
			}
			if e.Dst.Equal(node) {
				i := index[e.Src.Raw()]
				raw[i] += w.FroWeight
			}
		}

		columns[j] = normalizeColumn(raw, total)
	}

	c, err := chain.New(n, columns)
	if err != nil {
		return nil, nil, nil, err
	}
	return order, totalOut, c, nil
}

// normalizeColumn divides every raw accumulated weight by total and
// returns the result as a sparse Column with rows in ascending index
// order, for reproducible output.
func normalizeColumn(raw map[int]float64, total float64) chain.Column {
	indices := make([]int, 0, len(raw))
	for i := range raw {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	col := chain.Column{
		NeighborIndex: make([]int, len(indices)),
		Weight:        make([]float64, len(indices)),
	}
	for k, i := range indices {
		col.NeighborIndex[k] = i
		col.Weight[k] = raw[i] / total
	}
	return col
}
