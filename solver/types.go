package solver

import "time"

// Recorder receives per-iteration and final convergence telemetry. The
// zero value of Options has a nil Recorder, so instrumentation is strictly
// opt-in and the solver carries no hard dependency on any metrics backend.
type Recorder interface {
	// ObserveStep is called after every applied chain.Step with the delta
	// observed against the previous distribution.
	ObserveStep(delta float64)
	// ObserveRun is called once, after the loop terminates, with the final
	// delta and the number of steps actually applied.
	ObserveRun(finalDelta float64, iterations int)
}

// Options configures a single Converge call.
type Options struct {
	// MaxIterations caps the number of power-iteration steps. Zero returns
	// the initial distribution immediately, with ConvergenceDelta computed
	// against one hypothetical (unapplied) step.
	MaxIterations int

	// ConvergenceThreshold stops iteration once the most recent delta is
	// less than or equal to this value.
	ConvergenceThreshold float64

	// YieldAfter bounds how long the solver runs before cooperatively
	// yielding to the host scheduler and resuming. Zero disables yielding
	// (the loop runs to completion without ever calling runtime.Gosched).
	YieldAfter time.Duration

	// Recorder, if non-nil, receives telemetry for this run.
	Recorder Recorder
}

// Result is the outcome of a Converge call.
type Result struct {
	// Pi is the distribution at termination.
	Pi []float64
	// ConvergenceDelta is the last observed delta, per the termination
	// rule that produced it.
	ConvergenceDelta float64
	// Iterations is the number of power-iteration steps actually applied.
	Iterations int
}
