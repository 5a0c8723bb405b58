// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routesim/config"
)

const tomlDoc = `
[topology]
file = "Waxman.brite"
num_nodes = 0
num_edges = 0

[simulation]
seed = 42
policy = "simple"
flows = 25
episodes = 3

[congestion]
latency_exponent = 0.5

[log]
level = "debug"

[metrics]
addr = "127.0.0.1:9100"
`

const yamlDoc = `
topology:
  file: /data/Waxman.brite
simulation:
  policy: shaped
  max_steps: 500
log:
  file: /var/log/routesim.log
`

func TestParse_TOML(t *testing.T) {
	cfg, err := config.Parse([]byte(tomlDoc), config.FormatTOML)
	require.NoError(t, err)

	want := config.Default()
	want.Topology.File = "Waxman.brite"
	want.Topology.NumNodes = 0
	want.Topology.NumEdges = 0
	want.Simulation.Seed = 42
	want.Simulation.Policy = "simple"
	want.Simulation.Flows = 25
	want.Simulation.Episodes = 3
	want.Congestion.LatencyExponent = 0.5
	want.Log.Level = "debug"
	want.Metrics.Addr = "127.0.0.1:9100"

	assert.Equal(t, want, *cfg)
}

func TestParse_YAML(t *testing.T) {
	cfg, err := config.Parse([]byte(yamlDoc), config.FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "/data/Waxman.brite", cfg.Topology.File)
	assert.Equal(t, 500, cfg.Simulation.MaxSteps)
	assert.Equal(t, "/var/log/routesim.log", cfg.Log.File)
	// untouched defaults
	assert.Equal(t, 100, cfg.Topology.NumNodes)
	assert.Equal(t, 0.999, cfg.Congestion.MaxWeight)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]struct {
		doc    string
		format string
		want   error
	}{
		"missing file":    {"[simulation]\nseed = 1\n", config.FormatTOML, config.ErrInvalid},
		"bad policy":      {"[topology]\nfile = \"x\"\n[simulation]\npolicy = \"greedy\"\n", config.FormatTOML, config.ErrInvalid},
		"zero episodes":   {"topology:\n  file: x\nsimulation:\n  episodes: 0\n", config.FormatYAML, config.ErrInvalid},
		"negative flows":  {"topology:\n  file: x\nsimulation:\n  flows: -1\n", config.FormatYAML, config.ErrInvalid},
		"bad addr":        {"[topology]\nfile = \"x\"\n[metrics]\naddr = \"nope\"\n", config.FormatTOML, config.ErrInvalid},
		"unknown toml":    {"[topology]\nfile = \"x\"\ncolour = 1\n", config.FormatTOML, config.ErrInvalid},
		"unknown format":  {"", "ini", config.ErrUnknownFormat},
		"bad capacity sc": {"[topology]\nfile = \"x\"\ncapacity_scale = 0\n", config.FormatTOML, config.ErrInvalid},
		"bad source":      {"[topology]\nsource = \"dns\"\n", config.FormatTOML, config.ErrInvalid},
		"bad alpha":       {"[topology]\nsource = \"waxman\"\n[topology.waxman]\nalpha = 1.5\n", config.FormatTOML, config.ErrInvalid},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.doc), tc.format)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := config.Parse([]byte("topology:\n  file: x\n  colour: red\n"), config.FormatYAML)
	assert.Error(t, err)
}

func TestParse_WaxmanNeedsNoFile(t *testing.T) {
	doc := "[topology]\nsource = \"waxman\"\n[topology.waxman]\nnodes = 30\nseed = 9\n"
	cfg, err := config.Parse([]byte(doc), config.FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, config.SourceWaxman, cfg.Topology.Source)
	assert.Empty(t, cfg.Topology.File)
	assert.Equal(t, config.Waxman{Nodes: 30, Links: 2, Alpha: 0.15, Beta: 0.2, Seed: 9}, cfg.Topology.Waxman)
}

func TestLoad_ResolvesTopologyRelativeToConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sim.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlDoc), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Waxman.brite"), cfg.Topology.File)

	ypath := filepath.Join(dir, "sim.yml")
	require.NoError(t, os.WriteFile(ypath, []byte(yamlDoc), 0o600))
	cfg, err = config.Load(ypath)
	require.NoError(t, err)
	assert.Equal(t, "/data/Waxman.brite", cfg.Topology.File)

	_, err = config.Load(filepath.Join(dir, "sim.ini"))
	assert.ErrorIs(t, err, config.ErrUnknownFormat)

	_, err = config.Load(filepath.Join(dir, "absent.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
