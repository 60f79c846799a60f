// Package metrics exposes solver convergence telemetry as Prometheus
// collectors. Recorder implements solver.Recorder and reports through the
// package-level collectors, which are registered with the default
// registerer via promauto at import time.
package metrics
