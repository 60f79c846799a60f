package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StepDelta observes the L∞ convergence delta after every applied
	// power-iteration step, across all runs in this process.
	StepDelta = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "scoregraph_step_delta",
		Help:    "Convergence delta observed after each power-iteration step",
		Buckets: prometheus.ExponentialBuckets(1e-9, 10, 12),
	})

	// RunFinalDelta observes the delta a run terminates with.
	RunFinalDelta = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "scoregraph_run_final_delta",
		Help:    "Convergence delta a run terminated with",
		Buckets: prometheus.ExponentialBuckets(1e-9, 10, 12),
	})

	// RunIterations observes how many power-iteration steps a run applied.
	RunIterations = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "scoregraph_run_iterations",
		Help:    "Number of power-iteration steps a run applied",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 170, 250, 500, 1000},
	})

	// RunsTotal counts completed runs.
	RunsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scoregraph_runs_total",
		Help: "Total number of completed solver runs",
	})
)

// Recorder implements solver.Recorder against the package-level
// collectors. The zero value is ready to use.
type Recorder struct{}

// NewRecorder returns a Recorder.
func NewRecorder() Recorder { return Recorder{} }

// ObserveStep implements solver.Recorder.
func (Recorder) ObserveStep(delta float64) {
	StepDelta.Observe(delta)
}

// ObserveRun implements solver.Recorder.
func (Recorder) ObserveRun(finalDelta float64, iterations int) {
	RunFinalDelta.Observe(finalDelta)
	RunIterations.Observe(float64(iterations))
	RunsTotal.Inc()
}
