// SPDX-License-Identifier: MIT

package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routesim/astar"
	"github.com/katalvlaran/routesim/core"
)

// diamond: 0-1 (0.5), 1-3 (0.5), 0-2 (0.25), 2-3 (0.5), 0-3 (0.9).
// Positions lie on a unit grid so Euclidean(0.1) stays admissible.
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(0, core.Position{X: 0, Y: 0}))
	require.NoError(t, g.AddVertex(1, core.Position{X: 1, Y: 1}))
	require.NoError(t, g.AddVertex(2, core.Position{X: 1, Y: -1}))
	require.NoError(t, g.AddVertex(3, core.Position{X: 2, Y: 0}))
	require.NoError(t, g.AddEdge(0, 1, 0.5, 1))
	require.NoError(t, g.AddEdge(1, 3, 0.5, 1))
	require.NoError(t, g.AddEdge(0, 2, 0.25, 1))
	require.NoError(t, g.AddEdge(2, 3, 0.5, 1))
	require.NoError(t, g.AddEdge(0, 3, 0.9, 1))

	return g
}

func TestSearch_Validation(t *testing.T) {
	_, err := astar.Search(nil, 0, 1)
	assert.ErrorIs(t, err, astar.ErrNilGraph)

	g := diamond(t)
	_, err = astar.Search(g, 0, 99)
	assert.ErrorIs(t, err, astar.ErrVertexNotFound)
	_, err = astar.Search(g, 99, 0)
	assert.ErrorIs(t, err, astar.ErrVertexNotFound)
}

func TestSearch_CheapestPath(t *testing.T) {
	g := diamond(t)

	res, err := astar.Search(g, 0, 3, astar.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, 0.75, res.Cost)
	assert.Equal(t, []int{0, 2, 3}, res.Path)
}

func TestSearch_EuclideanMatchesZero(t *testing.T) {
	g := diamond(t)

	for _, pair := range [][2]int{{0, 3}, {1, 2}, {3, 0}} {
		want, err := astar.PathLength(g, pair[0], pair[1])
		require.NoError(t, err)
		got, err := astar.PathLength(g, pair[0], pair[1], astar.WithHeuristic(astar.Euclidean(0.1)))
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-12, "pair %v", pair)
	}
}

func TestSearch_SourceIsGoal(t *testing.T) {
	g := diamond(t)

	res, err := astar.Search(g, 2, 2, astar.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Cost)
	assert.Equal(t, []int{2}, res.Path)
}

func TestSearch_DirectEdgeCostIsExact(t *testing.T) {
	g := diamond(t)

	cost, err := astar.PathLength(g, 0, 2)
	require.NoError(t, err)
	e, err := g.Edge(0, 2)
	require.NoError(t, err)
	assert.True(t, cost == e.Weight)
}

func TestSearch_NoPath(t *testing.T) {
	g := diamond(t)
	require.NoError(t, g.AddVertex(7, core.Position{}))

	_, err := astar.Search(g, 0, 7)
	assert.ErrorIs(t, err, astar.ErrNoPath)
}

func TestSearch_NegativeWeight(t *testing.T) {
	g := diamond(t)
	require.NoError(t, g.UpdateEdge(0, 1, func(e *core.Edge) { e.Weight = -1 }))

	_, err := astar.Search(g, 0, 3)
	assert.ErrorIs(t, err, astar.ErrNegativeWeight)
}
