package serial

import "encoding/json"

// HeaderType and HeaderVersion are the literal header values this package
// writes and requires on decode.
const (
	HeaderType    = "scoregraph.overlay"
	HeaderVersion = 1
)

// Header identifies the envelope's schema.
type Header struct {
	Type    string `json:"type"`
	Version int    `json:"version"`
}

// Payload is the versioned external form of an Overlay's derived state:
// the host graph's canonical JSON, scores in canonical node order, and
// to/fro weights in canonical edge order.
type Payload struct {
	GraphJSON           json.RawMessage `json:"graphJSON"`
	Scores              []float64       `json:"scores"`
	ToWeights           []float64       `json:"toWeights"`
	FroWeights          []float64       `json:"froWeights"`
	SyntheticLoopWeight float64         `json:"syntheticLoopWeight"`
}

// Envelope is the top-level external form: a header plus a payload.
type Envelope struct {
	Header  Header  `json:"header"`
	Payload Payload `json:"payload"`
}
