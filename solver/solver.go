package solver

import (
	"runtime"
	"time"

	"github.com/weightedgraph/scoregraph/chain"
)

// Converge repeatedly steps c from pi0 toward a stationary distribution
// under teleport alpha and seed, until one of the termination rules fires:
//
//  1. iterations reaches opts.MaxIterations (current state is returned,
//     converged or not);
//  2. the most recent delta is <= opts.ConvergenceThreshold;
//  3. (checked only if neither above fires) if the wall time since the
//     last yield exceeds opts.YieldAfter, the solver calls runtime.Gosched
//     and continues.
//
// opts.MaxIterations == 0 returns pi0 unchanged, with ConvergenceDelta
// computed against one hypothetical (unapplied) step, so callers still see
// a meaningful signal of how far pi0 is from a fixed point.
func Converge(c *chain.Chain, pi0, seed []float64, alpha float64, opts Options) (Result, error) {
	if opts.MaxIterations < 0 || opts.ConvergenceThreshold < 0 {
		return Result{}, ErrInvalidOptions
	}

	pi := pi0
	iterations := 0
	lastYield := time.Now()

	for {
		if iterations >= opts.MaxIterations {
			delta, err := hypotheticalDelta(c, pi, seed, alpha)
			if err != nil {
				return Result{}, err
			}
			return finish(pi, delta, iterations, opts.Recorder), nil
		}

		next, err := c.Step(pi, seed, alpha)
		if err != nil {
			return Result{}, err
		}
		delta, err := chain.MaxDelta(pi, next)
		if err != nil {
			return Result{}, err
		}

		pi = next
		iterations++
		if opts.Recorder != nil {
			opts.Recorder.ObserveStep(delta)
		}

		if delta <= opts.ConvergenceThreshold {
			return finish(pi, delta, iterations, opts.Recorder), nil
		}

		if opts.YieldAfter > 0 && time.Since(lastYield) > opts.YieldAfter {
			runtime.Gosched()
			lastYield = time.Now()
		}
	}
}

// hypotheticalDelta computes the delta a step from pi would produce,
// without applying it — used for the MaxIterations==0 report.
func hypotheticalDelta(c *chain.Chain, pi, seed []float64, alpha float64) (float64, error) {
	next, err := c.Step(pi, seed, alpha)
	if err != nil {
		return 0, err
	}
	return chain.MaxDelta(pi, next)
}

func finish(pi []float64, delta float64, iterations int, rec Recorder) Result {
	if rec != nil {
		rec.ObserveRun(delta, iterations)
	}
	return Result{Pi: pi, ConvergenceDelta: delta, Iterations: iterations}
}
