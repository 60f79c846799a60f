package serial_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/weightedgraph/scoregraph/address"
	"github.com/weightedgraph/scoregraph/hostgraph"
	"github.com/weightedgraph/scoregraph/scoregraph"
	"github.com/weightedgraph/scoregraph/serial"
)

func unitForward(hostgraph.Edge) (hostgraph.EdgeWeight, error) {
	return hostgraph.EdgeWeight{ToWeight: 1, FroWeight: 0}, nil
}

func decodeMemGraph(data []byte) (hostgraph.Graph, error) {
	return hostgraph.DecodeJSON(data)
}

func buildCycle(t *testing.T, ids ...string) *hostgraph.MemGraph {
	t.Helper()
	g := hostgraph.NewGraph()
	for _, id := range ids {
		require.NoError(t, g.AddNode(address.MustNew(id)))
	}
	for i, id := range ids {
		next := ids[(i+1)%len(ids)]
		e := hostgraph.Edge{Address: address.MustNew("e", id, next), Src: address.MustNew(id), Dst: address.MustNew(next)}
		require.NoError(t, g.AddEdge(e))
	}
	return g
}

func TestRoundTripOverlayToOverlay(t *testing.T) {
	g := buildCycle(t, "a", "b", "c", "d")
	o, err := scoregraph.New(g, unitForward, scoregraph.DefaultSyntheticLoopWeight)
	require.NoError(t, err)
	_, err = o.Run(scoregraph.NoSeed(), scoregraph.RunOptions{MaxIterations: 50, ConvergenceThreshold: 1e-6})
	require.NoError(t, err)

	data, err := serial.Encode(o)
	require.NoError(t, err)

	restored, err := serial.Decode(data, decodeMemGraph)
	require.NoError(t, err)

	equal, err := o.Equal(restored)
	require.NoError(t, err)
	require.True(t, equal)
}

func TestRoundTripJSONToJSON(t *testing.T) {
	g := buildCycle(t, "a", "b", "c")
	o, err := scoregraph.New(g, unitForward, scoregraph.DefaultSyntheticLoopWeight)
	require.NoError(t, err)

	data, err := serial.Encode(o)
	require.NoError(t, err)

	restored, err := serial.Decode(data, decodeMemGraph)
	require.NoError(t, err)

	roundTripped, err := serial.Encode(restored)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(string(data), string(roundTripped)))
}

// buildCycleReordered builds the same a->b->c->d->a cycle as buildCycle,
// but inserts nodes and edges in reverse order, to check that canonical
// output does not depend on construction order.
func buildCycleReordered(t *testing.T) *hostgraph.MemGraph {
	t.Helper()
	g := hostgraph.NewGraph()
	for _, id := range []string{"d", "c", "b", "a"} {
		require.NoError(t, g.AddNode(address.MustNew(id)))
	}
	pairs := [][2]string{{"c", "d"}, {"b", "c"}, {"a", "b"}, {"d", "a"}}
	for _, p := range pairs {
		e := hostgraph.Edge{Address: address.MustNew("e", p[0], p[1]), Src: address.MustNew(p[0]), Dst: address.MustNew(p[1])}
		require.NoError(t, g.AddEdge(e))
	}
	return g
}

func TestCanonicalAcrossConstructionOrder(t *testing.T) {
	forward := buildCycle(t, "a", "b", "c", "d")
	reverse := buildCycleReordered(t)

	of, err := scoregraph.New(forward, unitForward, scoregraph.DefaultSyntheticLoopWeight)
	require.NoError(t, err)
	or, err := scoregraph.New(reverse, unitForward, scoregraph.DefaultSyntheticLoopWeight)
	require.NoError(t, err)

	dataF, err := serial.Encode(of)
	require.NoError(t, err)
	dataR, err := serial.Encode(or)
	require.NoError(t, err)
	require.Equal(t, string(dataF), string(dataR))
}

func TestDecodeRejectsCompatMismatch(t *testing.T) {
	_, err := serial.Decode([]byte(`{"header":{"type":"wrong","version":1},"payload":{}}`), decodeMemGraph)
	require.ErrorIs(t, err, serial.ErrCompatMismatch)
}

func TestDecodeRejectsLengthMismatch(t *testing.T) {
	g := buildCycle(t, "a", "b")
	o, err := scoregraph.New(g, unitForward, scoregraph.DefaultSyntheticLoopWeight)
	require.NoError(t, err)
	data, err := serial.Encode(o)
	require.NoError(t, err)

	var env serial.Envelope
	require.NoError(t, json.Unmarshal(data, &env))
	env.Payload.Scores = env.Payload.Scores[:1]
	corrupted, err := json.Marshal(env)
	require.NoError(t, err)

	_, err = serial.Decode(corrupted, decodeMemGraph)
	require.ErrorIs(t, err, serial.ErrLengthMismatch)
}
