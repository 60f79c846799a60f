package hostgraph

import (
	"errors"
	"math"
)

// ErrInvalidWeight indicates an Evaluator returned a negative, NaN, or
// infinite weight.
var ErrInvalidWeight = errors.New("hostgraph: invalid edge weight")

// EdgeWeight is the asymmetric forward/backward weight pair attached to an
// edge: ToWeight governs score flow src->dst, FroWeight governs score flow
// dst->src. Both must be non-negative and finite; either may be zero.
type EdgeWeight struct {
	ToWeight  float64
	FroWeight float64
}

// Valid reports whether both components are non-negative and finite.
func (w EdgeWeight) Valid() bool {
	return isValidWeight(w.ToWeight) && isValidWeight(w.FroWeight)
}

func isValidWeight(w float64) bool {
	return w >= 0 && !math.IsNaN(w) && !math.IsInf(w, 0)
}

// Evaluator is a total function from an edge to its EdgeWeight. Called
// exactly once per edge during overlay construction; must be deterministic
// and return only non-negative, finite weights.
type Evaluator func(Edge) (EdgeWeight, error)
