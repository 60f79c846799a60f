package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weightedgraph/scoregraph/address"
	"github.com/weightedgraph/scoregraph/compiler"
	"github.com/weightedgraph/scoregraph/hostgraph"
)

// buildCycle builds a-b-c-d-a with unit ToWeight and zero FroWeight on
// every edge.
func buildCycle(t *testing.T) (*hostgraph.MemGraph, map[string]hostgraph.EdgeWeight) {
	t.Helper()
	g := hostgraph.NewGraph()
	ids := []string{"a", "b", "c", "d"}
	for _, id := range ids {
		require.NoError(t, g.AddNode(address.MustNew(id)))
	}
	weights := make(map[string]hostgraph.EdgeWeight)
	for i, id := range ids {
		next := ids[(i+1)%len(ids)]
		e := hostgraph.Edge{Address: address.MustNew("e", id, next), Src: address.MustNew(id), Dst: address.MustNew(next)}
		require.NoError(t, g.AddEdge(e))
		weights[e.Address.Raw()] = hostgraph.EdgeWeight{ToWeight: 1, FroWeight: 0}
	}
	return g, weights
}

func TestCompileRejectsEmptyGraph(t *testing.T) {
	g := hostgraph.NewGraph()
	_, _, _, err := compiler.Compile(g, nil, 1e-3)
	require.ErrorIs(t, err, compiler.ErrEmptyGraph)
}

func TestCompileColumnsSumToOne(t *testing.T) {
	g, weights := buildCycle(t)
	order, totalOut, c, err := compiler.Compile(g, weights, 1e-3)
	require.NoError(t, err)
	require.Len(t, order, 4)

	for i := range order {
		pi := make([]float64, 4)
		pi[i] = 1
		next, err := c.Step(pi, pi, 0)
		require.NoError(t, err)
		sum := 0.0
		for _, v := range next {
			sum += v
		}
		require.InDelta(t, 1, sum, 1e-9)
	}

	for _, a := range order {
		require.InDelta(t, 1+1e-3, totalOut[a.Raw()], 1e-12)
	}
}

func TestCompileSelfLoopContributesBothWeights(t *testing.T) {
	g := hostgraph.NewGraph()
	a := address.MustNew("a")
	require.NoError(t, g.AddNode(a))
	loop := hostgraph.Edge{Address: address.MustNew("loop"), Src: a, Dst: a}
	require.NoError(t, g.AddEdge(loop))
	weights := map[string]hostgraph.EdgeWeight{loop.Address.Raw(): {ToWeight: 2, FroWeight: 3}}

	_, totalOut, c, err := compiler.Compile(g, weights, 1e-3)
	require.NoError(t, err)
	require.InDelta(t, 1e-3+2+3, totalOut[a.Raw()], 1e-12)

	next, err := c.Step([]float64{1}, []float64{1}, 0)
	require.NoError(t, err)
	require.InDelta(t, 1, next[0], 1e-12)
}

func TestCompileMissingWeightErrors(t *testing.T) {
	g, weights := buildCycle(t)
	delete(weights, address.MustNew("e", "a", "b").Raw())
	_, _, _, err := compiler.Compile(g, weights, 1e-3)
	require.ErrorIs(t, err, compiler.ErrMissingWeight)
}
