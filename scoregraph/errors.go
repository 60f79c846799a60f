package scoregraph

import "errors"

// Sentinel errors for Overlay construction and operation. Callers should
// match with errors.Is; messages returned by package functions wrap these
// with fmt.Errorf for context.
var (
	// ErrEmptyGraph indicates New was called over a graph with zero nodes.
	ErrEmptyGraph = errors.New("scoregraph: graph has no nodes")

	// ErrInvalidLoopWeight indicates a non-positive syntheticLoopWeight was
	// supplied to New.
	ErrInvalidLoopWeight = errors.New("scoregraph: synthetic loop weight must be positive")

	// ErrInvalidWeight indicates the evaluator returned a negative, NaN, or
	// infinite weight for some edge.
	ErrInvalidWeight = errors.New("scoregraph: invalid edge weight")

	// ErrGraphModified indicates the host graph's modification counter has
	// diverged from the snapshot taken at construction.
	ErrGraphModified = errors.New("scoregraph: host graph modified since construction")

	// ErrUnknownNode indicates an operation referenced a node address not
	// present in the overlay.
	ErrUnknownNode = errors.New("scoregraph: unknown node")

	// ErrInvalidOptions indicates an options record was supplied with a
	// required field left nil.
	ErrInvalidOptions = errors.New("scoregraph: invalid options")

	// ErrTypeMismatch indicates Equal was called with an argument that is
	// not a *scoregraph.Overlay.
	ErrTypeMismatch = errors.New("scoregraph: type mismatch")

	// ErrNotImplemented indicates Run was called with a SpecifiedSeed.
	ErrNotImplemented = errors.New("scoregraph: seed kind not implemented")
)
