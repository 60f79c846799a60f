package serial

import (
	"encoding/json"
	"fmt"

	"github.com/weightedgraph/scoregraph/compiler"
	"github.com/weightedgraph/scoregraph/scoregraph"
)

// Encode produces the canonical external form of o: a versioned envelope
// whose payload holds the host graph's canonical JSON, scores in
// canonical node order, and to/fro weights in canonical edge order. Two
// overlays with equal graphs/weights/scores/loop-weight, however their
// graphs were built, produce byte-identical output.
func Encode(o *scoregraph.Overlay) ([]byte, error) {
	graph, err := o.Graph()
	if err != nil {
		return nil, fmt.Errorf("serial.Encode: %w", err)
	}
	weights, err := o.WeightsSnapshot()
	if err != nil {
		return nil, fmt.Errorf("serial.Encode: %w", err)
	}
	scores, err := o.ScoresSnapshot()
	if err != nil {
		return nil, fmt.Errorf("serial.Encode: %w", err)
	}
	loopWeight, err := o.SyntheticLoopWeight()
	if err != nil {
		return nil, fmt.Errorf("serial.Encode: %w", err)
	}

	graphJSON, err := graph.CanonicalJSON()
	if err != nil {
		return nil, fmt.Errorf("serial.Encode: %w", err)
	}

	order := compiler.NodeOrder(graph)
	scoresArr := make([]float64, len(order))
	for i, a := range order {
		scoresArr[i] = scores[a.Raw()]
	}

	toWeights := make([]float64, 0)
	froWeights := make([]float64, 0)
	for e := range graph.Edges(nil, nil, nil) {
		w := weights[e.Address.Raw()]
		toWeights = append(toWeights, w.ToWeight)
		froWeights = append(froWeights, w.FroWeight)
	}

	env := Envelope{
		Header: Header{Type: HeaderType, Version: HeaderVersion},
		Payload: Payload{
			GraphJSON:           graphJSON,
			Scores:              scoresArr,
			ToWeights:           toWeights,
			FroWeights:          froWeights,
			SyntheticLoopWeight: loopWeight,
		},
	}
	return json.Marshal(env)
}
