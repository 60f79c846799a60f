package main

import (
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/weightedgraph/scoregraph/address"
	"github.com/weightedgraph/scoregraph/hostgraph"
	"github.com/weightedgraph/scoregraph/internal/config"
	"github.com/weightedgraph/scoregraph/metrics"
	"github.com/weightedgraph/scoregraph/scoregraph"
	"github.com/weightedgraph/scoregraph/serial"
)

var runCmd = &cobra.Command{
	Use:   "run <envelope.json>",
	Short: "Run the solver over a serialized overlay and print resulting scores",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func init() {
	runCmd.Flags().Float64("alpha", 0, "teleport probability (0 disables teleport, per NO_SEED)")
	runCmd.Flags().String("seed", "", "comma-separated node addresses for a selected seed; empty means uniform")
	runCmd.Flags().Int("max-iterations", 0, "override configured max iterations (0 uses config)")
	runCmd.Flags().Float64("convergence-threshold", 0, "override configured convergence threshold (0 uses config)")
}

func decodeMemGraph(data []byte) (hostgraph.Graph, error) {
	return hostgraph.DecodeJSON(data)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("scoregraph run: %w", err)
	}
	overlay, err := serial.Decode(data, decodeMemGraph)
	if err != nil {
		return fmt.Errorf("scoregraph run: %w", err)
	}

	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr)
	}

	alpha, _ := cmd.Flags().GetFloat64("alpha")
	seedRaw, _ := cmd.Flags().GetString("seed")
	maxIterations, _ := cmd.Flags().GetInt("max-iterations")
	if maxIterations == 0 {
		maxIterations = cfg.MaxIterations
	}
	threshold, _ := cmd.Flags().GetFloat64("convergence-threshold")
	if threshold == 0 {
		threshold = cfg.ConvergenceThreshold
	}

	seed := buildSeed(alpha, seedRaw)
	result, err := overlay.Run(seed, scoregraph.RunOptions{
		MaxIterations:        maxIterations,
		ConvergenceThreshold: threshold,
		YieldAfter:           time.Duration(cfg.YieldAfterMS) * time.Millisecond,
		Recorder:             metrics.NewRecorder(),
	})
	if err != nil {
		return fmt.Errorf("scoregraph run: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "convergence delta: %g\n", result.ConvergenceDelta)
	return printScores(cmd, overlay)
}

func buildSeed(alpha float64, seedRaw string) scoregraph.Seed {
	seedRaw = strings.TrimSpace(seedRaw)
	if seedRaw == "" {
		if alpha == 0 {
			return scoregraph.NoSeed()
		}
		return scoregraph.UniformSeed(alpha)
	}
	var nodes []address.Address
	for _, part := range strings.Split(seedRaw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		nodes = append(nodes, address.MustNew(part))
	}
	return scoregraph.SelectedSeed(alpha, nodes)
}

func printScores(cmd *cobra.Command, overlay *scoregraph.Overlay) error {
	seq, err := overlay.Nodes(nil)
	if err != nil {
		return err
	}
	var rows []scoregraph.NodeScore
	for ns := range seq {
		rows = append(rows, ns)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Score > rows[j].Score })
	for _, ns := range rows {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%g\n", ns.Address, ns.Score)
	}
	return nil
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	_ = http.ListenAndServe(addr, mux)
}
