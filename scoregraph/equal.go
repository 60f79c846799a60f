package scoregraph

import (
	"fmt"

	"github.com/weightedgraph/scoregraph/hostgraph"
)

// Equal reports whether other is a *Overlay with the same graph, score
// map, weight map, and synthetic-loop weight as o. Modification history
// is irrelevant. If other is not a *Overlay, Equal returns
// ErrTypeMismatch rather than false.
func (o *Overlay) Equal(other any) (bool, error) {
	if err := o.checkGraph(); err != nil {
		return false, err
	}
	oo, ok := other.(*Overlay)
	if !ok {
		return false, fmt.Errorf("scoregraph.Equal: %T: %w", other, ErrTypeMismatch)
	}
	if err := oo.checkGraph(); err != nil {
		return false, err
	}

	if o.syntheticLoopWeight != oo.syntheticLoopWeight {
		return false, nil
	}
	if !o.graph.Equal(oo.graph) {
		return false, nil
	}

	o.mu.RLock()
	oo.mu.RLock()
	scoresEqual := mapsEqual(o.scores, oo.scores)
	o.mu.RUnlock()
	oo.mu.RUnlock()
	if !scoresEqual {
		return false, nil
	}

	return weightsEqual(o.weights, oo.weights), nil
}

func mapsEqual(a, b map[string]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

func weightsEqual(a, b map[string]hostgraph.EdgeWeight) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}
