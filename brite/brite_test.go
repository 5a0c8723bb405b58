// SPDX-License-Identifier: MIT

package brite_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routesim/brite"
	"github.com/katalvlaran/routesim/core"
)

const small = "Topology: ( 4 Nodes, 4 Edges )\n" +
	"Model (1 - RTWaxman):  4 1000 100 1  2  0.15000000596046448 0.20000000298023224 1 1 10.0 1024.0\n" +
	"\n" +
	"Nodes: ( 4 )\n" +
	"0\t10\t20\t2\t2\t-1\tRT_NODE\n" +
	"1\t30\t40\t2\t2\t-1\tRT_NODE\n" +
	"2\t50\t60\t2\t2\t-1\tRT_NODE\n" +
	"3\t70\t80\t2\t2\t-1\tRT_NODE\n" +
	"\n" +
	"\n" +
	"Edges: ( 4 ):\n" +
	"0\t0\t1\t28.28\t0.25\t150.0\t-1\t-1\tE_RT\tU\n" +
	"1\t1\t2\t28.28\t0.5\t300.0\t-1\t-1\tE_RT\tU\n" +
	"2\t2\t3\t28.28\t0.75\t75.0\t-1\t-1\tE_RT\tU\n" +
	"3\t3\t0\t84.85\t0.1\t1000.0\t-1\t-1\tE_RT\tU\n"

func opts(nodes, edges int) brite.Options {
	o := brite.DefaultOptions()
	o.NumNodes, o.NumEdges = nodes, edges

	return o
}

func TestLoad(t *testing.T) {
	g, err := brite.Load(strings.NewReader(small), opts(4, 4))
	require.NoError(t, err)

	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())

	pos, err := g.Position(2)
	require.NoError(t, err)
	assert.Equal(t, core.Position{X: 50, Y: 60}, pos)

	e, err := g.Edge(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.5, e.Weight)
	assert.Equal(t, 3.0, e.Capacity)

	e, err = g.Edge(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.1, e.Weight)
	assert.Equal(t, 10.0, e.Capacity)
}

func TestLoad_CountsFromHeader(t *testing.T) {
	g, err := brite.Load(strings.NewReader(small), brite.Options{})
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount())
}

func TestLoad_Prefix(t *testing.T) {
	// Reading fewer records than present is allowed; the rest is ignored.
	// Edge lines start right after the separator, so fewer nodes would
	// misalign them; only the edge count is reduced here.
	g, err := brite.Load(strings.NewReader(small), opts(4, 2))
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(2, 3))
}

func TestLoad_Errors(t *testing.T) {
	_, err := brite.Load(strings.NewReader(small), opts(4, 5))
	assert.ErrorIs(t, err, brite.ErrShortFile)

	_, err = brite.Load(strings.NewReader("Topology\n"), opts(1, 0))
	assert.ErrorIs(t, err, brite.ErrShortFile)

	bad := strings.Replace(small, "1\t30\t40", "1\tthirty\t40", 1)
	_, err = brite.Load(strings.NewReader(bad), opts(4, 4))
	assert.ErrorIs(t, err, brite.ErrBadNumber)
	assert.Contains(t, err.Error(), "line 6")

	short := strings.Replace(small, "2\t2\t3\t28.28\t0.75\t75.0\t-1\t-1\tE_RT\tU", "2\t2\t3\t28.28", 1)
	_, err = brite.Load(strings.NewReader(short), opts(4, 4))
	assert.ErrorIs(t, err, brite.ErrFieldCount)

	loop := strings.Replace(small, "3\t3\t0\t", "3\t3\t3\t", 1)
	_, err = brite.Load(strings.NewReader(loop), opts(4, 4))
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = brite.Load(strings.NewReader("garbage\n\n\n\n"), brite.Options{})
	assert.ErrorIs(t, err, brite.ErrBadHeader)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.brite")
	require.NoError(t, os.WriteFile(path, []byte(small), 0o600))

	g, err := brite.LoadFile(path, opts(4, 4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.EdgeCount())

	_, err = brite.LoadFile(filepath.Join(t.TempDir(), "missing"), opts(4, 4))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
