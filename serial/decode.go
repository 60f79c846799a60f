package serial

import (
	"encoding/json"
	"fmt"

	"github.com/weightedgraph/scoregraph/compiler"
	"github.com/weightedgraph/scoregraph/hostgraph"
	"github.com/weightedgraph/scoregraph/scoregraph"
)

// GraphDecoder reconstructs a hostgraph.Graph from the canonical JSON a
// Graph's CanonicalJSON method produces. This package ships no
// implementation; callers supply one, for example hostgraph.DecodeJSON
// wrapped to this signature.
type GraphDecoder func(data []byte) (hostgraph.Graph, error)

// Decode reconstructs an Overlay from data, an envelope produced by
// Encode (or any producer emitting the same schema). decodeGraph
// reconstructs the host graph from the embedded canonical JSON.
//
// Returns ErrCompatMismatch if the header's type or version does not
// match this package's, and ErrLengthMismatch if the scores or weight
// arrays do not match the decoded graph's node or edge count.
func Decode(data []byte, decodeGraph GraphDecoder) (*scoregraph.Overlay, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("serial.Decode: %w", err)
	}
	if env.Header.Type != HeaderType || env.Header.Version != HeaderVersion {
		return nil, fmt.Errorf("serial.Decode: got %s v%d: %w", env.Header.Type, env.Header.Version, ErrCompatMismatch)
	}

	graph, err := decodeGraph(env.Payload.GraphJSON)
	if err != nil {
		return nil, fmt.Errorf("serial.Decode: %w", err)
	}

	order := compiler.NodeOrder(graph)
	if len(order) != len(env.Payload.Scores) {
		return nil, fmt.Errorf("serial.Decode: %d nodes, %d scores: %w", len(order), len(env.Payload.Scores), ErrLengthMismatch)
	}
	scores := make(map[string]float64, len(order))
	for i, a := range order {
		scores[a.Raw()] = env.Payload.Scores[i]
	}

	var edgeOrder []hostgraph.Edge
	for e := range graph.Edges(nil, nil, nil) {
		edgeOrder = append(edgeOrder, e)
	}
	if len(edgeOrder) != len(env.Payload.ToWeights) || len(edgeOrder) != len(env.Payload.FroWeights) {
		return nil, fmt.Errorf("serial.Decode: %d edges, %d/%d weights: %w",
			len(edgeOrder), len(env.Payload.ToWeights), len(env.Payload.FroWeights), ErrLengthMismatch)
	}
	weights := make(map[string]hostgraph.EdgeWeight, len(edgeOrder))
	for i, e := range edgeOrder {
		weights[e.Address.Raw()] = hostgraph.EdgeWeight{
			ToWeight:  env.Payload.ToWeights[i],
			FroWeight: env.Payload.FroWeights[i],
		}
	}

	o, err := scoregraph.FromState(graph, weights, scores, env.Payload.SyntheticLoopWeight)
	if err != nil {
		return nil, fmt.Errorf("serial.Decode: %w", err)
	}
	return o, nil
}
