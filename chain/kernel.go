package chain

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ColumnEpsilon is the tolerance within which a column's weights must sum
// to 1 for New to accept it. Spec-wise this matches the "within 1e-12"
// column-stochasticity testable property.
const ColumnEpsilon = 1e-12

// Column is the sparse representation of one column of a Chain: the
// nonzero rows reachable in one step from the column's node, and the
// transition probability to each.
type Column struct {
	NeighborIndex []int
	Weight        []float64
}

// Chain is a sparse column-stochastic transition matrix over n nodes,
// indexed 0..n-1 in the caller's canonical node order.
type Chain struct {
	n       int
	columns []Column
}

// New validates and wraps columns into a Chain. Every column's weights
// must be non-negative, finite, reference indices in [0, n), and sum to 1
// within ColumnEpsilon. len(columns) must equal n.
func New(n int, columns []Column) (*Chain, error) {
	if len(columns) != n {
		return nil, fmt.Errorf("chain.New: %d columns for n=%d: %w", len(columns), n, ErrDimensionMismatch)
	}
	for j, col := range columns {
		if len(col.NeighborIndex) != len(col.Weight) {
			return nil, fmt.Errorf("chain.New: column %d: %w", j, ErrDimensionMismatch)
		}
		var sum float64
		for k, i := range col.NeighborIndex {
			w := col.Weight[k]
			if i < 0 || i >= n {
				return nil, fmt.Errorf("chain.New: column %d row %d: %w", j, i, ErrIndexOutOfRange)
			}
			if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("chain.New: column %d row %d weight %v: %w", j, i, w, ErrNegativeWeight)
			}
			sum += w
		}
		if math.Abs(sum-1) > ColumnEpsilon {
			return nil, fmt.Errorf("chain.New: column %d sums to %v: %w", j, sum, ErrColumnNotStochastic)
		}
	}
	return &Chain{n: n, columns: columns}, nil
}

// N returns the number of nodes (distribution length) of the chain.
func (c *Chain) N() int { return c.n }

// Uniform returns the uniform distribution [1/n, ..., 1/n]. Panics if n <= 0
// since a probability distribution over zero elements is undefined —
// callers are expected to have already rejected an empty graph upstream.
func Uniform(n int) []float64 {
	if n <= 0 {
		panic("chain.Uniform: n must be positive")
	}
	pi := make([]float64, n)
	p := 1.0 / float64(n)
	for i := range pi {
		pi[i] = p
	}
	return pi
}

// Indicator returns a distribution over len(order) nodes whose mass is
// spread evenly over the indices in order that appear in selected, zero
// elsewhere. If selected is empty, the result is Uniform(len(order)). If
// selected is non-empty but shares no element with order, Indicator
// returns ErrEmptySelection.
func Indicator(order []string, selected []string) ([]float64, error) {
	n := len(order)
	if len(selected) == 0 {
		return Uniform(n), nil
	}

	want := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		want[s] = struct{}{}
	}

	pi := make([]float64, n)
	hits := 0
	for i, addr := range order {
		if _, ok := want[addr]; ok {
			pi[i] = 1
			hits++
		}
	}
	if hits == 0 {
		return nil, ErrEmptySelection
	}
	mass := 1.0 / float64(hits)
	for i := range pi {
		pi[i] *= mass
	}
	return pi, nil
}

// Step performs one power-iteration step with teleport:
//
//	pi' = alpha*seed + (1-alpha)*(chain . pi)
//
// alpha must be in [0, 1]; pi and seed must both have length c.N().
func (c *Chain) Step(pi, seed []float64, alpha float64) ([]float64, error) {
	if alpha < 0 || alpha > 1 {
		return nil, ErrInvalidAlpha
	}
	if len(pi) != c.n {
		return nil, fmt.Errorf("chain.Step: pi has length %d, want %d: %w", len(pi), c.n, ErrDimensionMismatch)
	}
	if len(seed) != c.n {
		return nil, fmt.Errorf("chain.Step: seed has length %d, want %d: %w", len(seed), c.n, ErrDimensionMismatch)
	}

	// Dense scratch vector accumulates Σ_j chain[i][j]*pi[j] indexed by row i.
	scratch := make([]float64, c.n)
	for j, col := range c.columns {
		mass := pi[j]
		if mass == 0 {
			continue
		}
		for k, i := range col.NeighborIndex {
			scratch[i] += col.Weight[k] * mass
		}
	}

	out := make([]float64, c.n)
	for i := range out {
		out[i] = alpha*seed[i] + (1-alpha)*scratch[i]
	}
	return out, nil
}

// MaxDelta returns the L∞ norm max_i |piB[i] - piA[i]|, the convergence
// measure the solver drives to zero. piA and piB must have equal length.
func MaxDelta(piA, piB []float64) (float64, error) {
	if len(piA) != len(piB) {
		return 0, ErrDimensionMismatch
	}
	if len(piA) == 0 {
		return 0, nil
	}
	return floats.Distance(piA, piB, math.Inf(1)), nil
}
