package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/weightedgraph/scoregraph/address"
	"github.com/weightedgraph/scoregraph/hostgraph"
	"github.com/weightedgraph/scoregraph/scoregraph"
	"github.com/weightedgraph/scoregraph/serial"
)

func TestBuildSeedNoSeedByDefault(t *testing.T) {
	seed := buildSeed(0, "")
	require.Equal(t, scoregraph.NoSeed(), seed)
}

func TestBuildSeedUniformWithAlphaOnly(t *testing.T) {
	seed := buildSeed(0.5, "")
	require.Equal(t, scoregraph.UniformSeed(0.5), seed)
}

func TestBuildSeedSelected(t *testing.T) {
	seed := buildSeed(1, "a, b")
	require.Equal(t, scoregraph.SelectedSeed(1, []address.Address{address.MustNew("a"), address.MustNew("b")}), seed)
}

func TestRunCommandPrintsScores(t *testing.T) {
	g := hostgraph.NewGraph()
	for _, id := range []string{"a", "b"} {
		require.NoError(t, g.AddNode(address.MustNew(id)))
	}
	e := hostgraph.Edge{Address: address.MustNew("e", "a", "b"), Src: address.MustNew("a"), Dst: address.MustNew("b")}
	require.NoError(t, g.AddEdge(e))

	overlay, err := scoregraph.New(g, func(hostgraph.Edge) (hostgraph.EdgeWeight, error) {
		return hostgraph.EdgeWeight{ToWeight: 1}, nil
	}, scoregraph.DefaultSyntheticLoopWeight)
	require.NoError(t, err)

	data, err := serial.Encode(overlay)
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	var out bytes.Buffer
	runCmd.SetOut(&out)
	runCmd.SetArgs([]string{path})
	require.NoError(t, runRun(runCmd, []string{path}))
	require.Contains(t, out.String(), "a")
}
