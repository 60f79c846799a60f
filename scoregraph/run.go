package scoregraph

import (
	"fmt"
	"time"

	"github.com/weightedgraph/scoregraph/address"
	"github.com/weightedgraph/scoregraph/chain"
	"github.com/weightedgraph/scoregraph/compiler"
	"github.com/weightedgraph/scoregraph/solver"
)

// seedKind discriminates the closed tagged union Seed represents.
// Unexported: callers build a Seed only through the constructor functions
// below, which is the sum type's exhaustive set of cases.
type seedKind int

const (
	seedNone seedKind = iota
	seedUniform
	seedSelected
	seedSpecified
)

// Seed selects run's teleport target. Construct one of NoSeed,
// UniformSeed, SelectedSeed, or SpecifiedSeed; there is no other way to
// produce a valid Seed value.
type Seed struct {
	kind          seedKind
	alpha         float64
	selectedNodes []address.Address
	scoreMap      map[string]float64
}

// NoSeed selects teleport alpha=0 with a uniform seed distribution.
func NoSeed() Seed { return Seed{kind: seedNone} }

// UniformSeed selects a uniform seed distribution with the given teleport
// probability. alpha must be in [0, 1].
func UniformSeed(alpha float64) Seed { return Seed{kind: seedUniform, alpha: alpha} }

// SelectedSeed selects a seed distribution uniform over selectedNodes. If
// selectedNodes is empty, or (after dropping addresses absent from the
// graph) covers every node, the seed is treated as uniform over all
// nodes. alpha must be in [0, 1].
func SelectedSeed(alpha float64, selectedNodes []address.Address) Seed {
	return Seed{kind: seedSelected, alpha: alpha, selectedNodes: selectedNodes}
}

// SpecifiedSeed selects an explicit per-node score map as the seed
// distribution. Reserved: Run always rejects this kind with
// ErrNotImplemented.
func SpecifiedSeed(alpha float64, scoreMap map[string]float64) Seed {
	return Seed{kind: seedSpecified, alpha: alpha, scoreMap: scoreMap}
}

// RunOptions configures a Run call. YieldAfter and Recorder are threaded
// through to the underlying solver.Converge.
type RunOptions struct {
	MaxIterations        int
	ConvergenceThreshold float64
	YieldAfter           time.Duration
	Recorder             solver.Recorder
}

// RunResult reports the outcome of Run.
type RunResult struct {
	ConvergenceDelta float64
}

// Run compiles a chain from the current graph and weights, builds a seed
// distribution per seed, converges from the overlay's current scores, and
// writes the resulting distribution back into the score map in canonical
// order.
//
// Run rejects SpecifiedSeed with ErrNotImplemented.
func (o *Overlay) Run(seed Seed, opts RunOptions) (RunResult, error) {
	if err := o.checkGraph(); err != nil {
		return RunResult{}, err
	}
	if seed.kind == seedSpecified {
		return RunResult{}, fmt.Errorf("scoregraph.Run: specified seed: %w", ErrNotImplemented)
	}

	order, _, c, err := compiler.Compile(o.graph, o.weights, o.syntheticLoopWeight)
	if err != nil {
		return RunResult{}, fmt.Errorf("scoregraph.Run: %w", err)
	}
	n := len(order)

	alpha := seed.alpha
	var seedDist []float64
	switch seed.kind {
	case seedNone:
		alpha = 0
		seedDist = chain.Uniform(n)
	case seedUniform:
		seedDist = chain.Uniform(n)
	case seedSelected:
		orderRaw := make([]string, n)
		for i, a := range order {
			orderRaw[i] = a.Raw()
		}
		known := make(map[string]struct{}, n)
		for _, raw := range orderRaw {
			known[raw] = struct{}{}
		}
		filteredSet := make(map[string]struct{}, len(seed.selectedNodes))
		for _, a := range seed.selectedNodes {
			if _, ok := known[a.Raw()]; ok {
				filteredSet[a.Raw()] = struct{}{}
			}
		}
		var filtered []string
		if len(filteredSet) != n {
			for raw := range filteredSet {
				filtered = append(filtered, raw)
			}
		}
		seedDist, err = chain.Indicator(orderRaw, filtered)
		if err != nil {
			return RunResult{}, fmt.Errorf("scoregraph.Run: %w", err)
		}
	}

	o.mu.RLock()
	pi0 := make([]float64, n)
	for i, a := range order {
		pi0[i] = o.scores[a.Raw()]
	}
	o.mu.RUnlock()

	result, err := solver.Converge(c, pi0, seedDist, alpha, solver.Options{
		MaxIterations:        opts.MaxIterations,
		ConvergenceThreshold: opts.ConvergenceThreshold,
		YieldAfter:           opts.YieldAfter,
		Recorder:             opts.Recorder,
	})
	if err != nil {
		return RunResult{}, fmt.Errorf("scoregraph.Run: %w", err)
	}

	o.mu.Lock()
	for i, a := range order {
		o.scores[a.Raw()] = result.Pi[i]
	}
	o.mu.Unlock()

	return RunResult{ConvergenceDelta: result.ConvergenceDelta}, nil
}
