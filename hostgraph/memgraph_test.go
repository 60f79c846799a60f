package hostgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weightedgraph/scoregraph/address"
	"github.com/weightedgraph/scoregraph/hostgraph"
)

func buildFourCycle(t *testing.T) (*hostgraph.MemGraph, map[string]address.Address) {
	t.Helper()
	g := hostgraph.NewGraph()
	nodes := map[string]address.Address{
		"a": address.MustNew("a"),
		"b": address.MustNew("b"),
		"c": address.MustNew("c"),
		"d": address.MustNew("d"),
	}
	for _, a := range nodes {
		require.NoError(t, g.AddNode(a))
	}
	edges := [][2]string{{"a", "b"}, {"b", "c"}, {"c", "d"}, {"d", "a"}}
	for i, pair := range edges {
		e := hostgraph.Edge{
			Address: address.MustNew("edge", pair[0], pair[1], string(rune('0'+i))),
			Src:     nodes[pair[0]],
			Dst:     nodes[pair[1]],
		}
		require.NoError(t, g.AddEdge(e))
	}
	return g, nodes
}

func TestAddNodeIdempotent(t *testing.T) {
	g := hostgraph.NewGraph()
	a := address.MustNew("a")
	require.NoError(t, g.AddNode(a))
	before := g.ModificationCount()
	require.NoError(t, g.AddNode(a))
	require.Equal(t, before, g.ModificationCount())
}

func TestAddEdgeRequiresKnownEndpoints(t *testing.T) {
	g := hostgraph.NewGraph()
	a := address.MustNew("a")
	require.NoError(t, g.AddNode(a))

	err := g.AddEdge(hostgraph.Edge{Address: address.MustNew("e"), Src: a, Dst: address.MustNew("ghost")})
	require.ErrorIs(t, err, hostgraph.ErrUnknownNode)
}

func TestAddEdgeRejectsDuplicateAddress(t *testing.T) {
	g, nodes := buildFourCycle(t)
	err := g.AddEdge(hostgraph.Edge{Address: address.MustNew("edge", "a", "b", "0"), Src: nodes["a"], Dst: nodes["b"]})
	require.ErrorIs(t, err, hostgraph.ErrDuplicateEdge)
}

func TestNodesCanonicalOrder(t *testing.T) {
	g, _ := buildFourCycle(t)
	var got []string
	for a := range g.Nodes(nil) {
		got = append(got, a.String())
	}
	require.Equal(t, []string{"a", "b", "c", "d"}, got)
}

func TestNodesPrefixFilter(t *testing.T) {
	g := hostgraph.NewGraph()
	require.NoError(t, g.AddNode(address.MustNew("user", "1")))
	require.NoError(t, g.AddNode(address.MustNew("user", "2")))
	require.NoError(t, g.AddNode(address.MustNew("repo", "1")))

	prefix := address.MustNew("user")
	var got []string
	for a := range g.Nodes(&prefix) {
		got = append(got, a.String())
	}
	require.Equal(t, []string{"user/1", "user/2"}, got)
}

func TestNeighborsDirection(t *testing.T) {
	g, nodes := buildFourCycle(t)

	seq, ok := g.Neighbors(nodes["b"], hostgraph.DirectionOut, nil, nil)
	require.True(t, ok)
	var out []string
	for e := range seq {
		out = append(out, e.Dst.String())
	}
	require.Equal(t, []string{"c"}, out)

	seq, ok = g.Neighbors(nodes["b"], hostgraph.DirectionIn, nil, nil)
	require.True(t, ok)
	var in []string
	for e := range seq {
		in = append(in, e.Src.String())
	}
	require.Equal(t, []string{"a"}, in)
}

func TestNeighborsUnknownNode(t *testing.T) {
	g, _ := buildFourCycle(t)
	_, ok := g.Neighbors(address.MustNew("ghost"), hostgraph.DirectionAny, nil, nil)
	require.False(t, ok)
}

func TestNeighborsSelfLoopBothDirections(t *testing.T) {
	g := hostgraph.NewGraph()
	a := address.MustNew("a")
	require.NoError(t, g.AddNode(a))
	loop := hostgraph.Edge{Address: address.MustNew("loop"), Src: a, Dst: a}
	require.NoError(t, g.AddEdge(loop))

	for _, dir := range []hostgraph.Direction{hostgraph.DirectionIn, hostgraph.DirectionOut, hostgraph.DirectionAny} {
		seq, ok := g.Neighbors(a, dir, nil, nil)
		require.True(t, ok)
		var edges []hostgraph.Edge
		for e := range seq {
			edges = append(edges, e)
		}
		require.Len(t, edges, 1)
	}
}

func TestEqualIndependentOfConstructionOrder(t *testing.T) {
	g1 := hostgraph.NewGraph()
	require.NoError(t, g1.AddNode(address.MustNew("a")))
	require.NoError(t, g1.AddNode(address.MustNew("b")))
	require.NoError(t, g1.AddEdge(hostgraph.Edge{Address: address.MustNew("e"), Src: address.MustNew("a"), Dst: address.MustNew("b")}))

	g2 := hostgraph.NewGraph()
	require.NoError(t, g2.AddNode(address.MustNew("b")))
	require.NoError(t, g2.AddNode(address.MustNew("a")))
	require.NoError(t, g2.AddEdge(hostgraph.Edge{Address: address.MustNew("e"), Src: address.MustNew("a"), Dst: address.MustNew("b")}))

	require.True(t, g1.Equal(g2))
	require.True(t, g2.Equal(g1))
}

func TestCanonicalJSONRoundTripAndOrderIndependence(t *testing.T) {
	g1, _ := buildFourCycle(t)

	// Build the same graph with nodes/edges inserted in a different order.
	g2 := hostgraph.NewGraph()
	for _, id := range []string{"d", "c", "b", "a"} {
		require.NoError(t, g2.AddNode(address.MustNew(id)))
	}
	pairs := [][2]string{{"d", "a"}, {"c", "d"}, {"b", "c"}, {"a", "b"}}
	for _, p := range pairs {
		var idx string
		switch p {
		case [2]string{"a", "b"}:
			idx = "0"
		case [2]string{"b", "c"}:
			idx = "1"
		case [2]string{"c", "d"}:
			idx = "2"
		case [2]string{"d", "a"}:
			idx = "3"
		}
		require.NoError(t, g2.AddEdge(hostgraph.Edge{
			Address: address.MustNew("edge", p[0], p[1], idx),
			Src:     address.MustNew(p[0]),
			Dst:     address.MustNew(p[1]),
		}))
	}

	j1, err := g1.CanonicalJSON()
	require.NoError(t, err)
	j2, err := g2.CanonicalJSON()
	require.NoError(t, err)
	require.JSONEq(t, string(j1), string(j2))

	decoded, err := hostgraph.DecodeJSON(j1)
	require.NoError(t, err)
	require.True(t, decoded.Equal(g1))
}
