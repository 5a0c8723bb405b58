// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routesim/core"
)

// square builds 0-1-2-3-0 with distinct weights and capacities.
func square(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		require.NoError(t, g.AddVertex(i, core.Position{X: float64(i), Y: float64(i * 2)}))
	}
	require.NoError(t, g.AddEdge(0, 1, 0.1, 10))
	require.NoError(t, g.AddEdge(1, 2, 0.2, 20))
	require.NoError(t, g.AddEdge(2, 3, 0.3, 30))
	require.NoError(t, g.AddEdge(3, 0, 0.4, 40))

	return g
}

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(-1, core.Position{}), core.ErrBadVertexID)

	require.NoError(t, g.AddVertex(7, core.Position{X: 1, Y: 2}))
	require.True(t, g.HasVertex(7))

	// Duplicate insert is a no-op and keeps the first position.
	require.NoError(t, g.AddVertex(7, core.Position{X: 9, Y: 9}))
	pos, err := g.Position(7)
	require.NoError(t, err)
	assert.Equal(t, core.Position{X: 1, Y: 2}, pos)
	assert.Equal(t, 1, g.VertexCount())
}

func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewGraph()

	assert.ErrorIs(t, g.AddEdge(-1, 2, 0.5, 1), core.ErrBadVertexID)
	assert.ErrorIs(t, g.AddEdge(1, 1, 0.5, 1), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge(1, 2, -0.5, 1), core.ErrBadWeight)
	assert.ErrorIs(t, g.AddEdge(1, 2, 0.5, -1), core.ErrBadCapacity)

	require.NoError(t, g.AddEdge(1, 2, 0.5, 1))
	assert.ErrorIs(t, g.AddEdge(2, 1, 0.5, 1), core.ErrMultiEdgeNotAllowed)

	// Endpoints are created implicitly.
	assert.True(t, g.HasVertex(1))
	assert.True(t, g.HasVertex(2))
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_EdgeLookupIsOrientationFree(t *testing.T) {
	g := square(t)

	e1, err := g.Edge(0, 1)
	require.NoError(t, err)
	e2, err := g.Edge(1, 0)
	require.NoError(t, err)
	assert.Equal(t, e1, e2)
	assert.Equal(t, 1, e1.Other(0))
	assert.Equal(t, 0, e1.Other(1))

	assert.True(t, g.HasEdge(3, 0))
	assert.False(t, g.HasEdge(0, 2))

	_, err = g.Edge(0, 2)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestGraph_UpdateEdge(t *testing.T) {
	g := square(t)

	err := g.UpdateEdge(2, 1, func(e *core.Edge) {
		e.Weight = 0.9
		e.Capacity = 0.5
		e.From = 42 // identity fields are restored
	})
	require.NoError(t, err)

	e, err := g.Edge(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.9, e.Weight)
	assert.Equal(t, 0.5, e.Capacity)
	assert.Equal(t, 1, e.From)

	err = g.UpdateEdge(0, 2, func(*core.Edge) {})
	assert.True(t, errors.Is(err, core.ErrEdgeNotFound))
}

func TestGraph_NeighborsAndDegree(t *testing.T) {
	g := square(t)
	require.NoError(t, g.AddEdge(0, 2, 0.5, 1))

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, nbrs)

	d, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	_, err = g.Neighbors(99)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree(99)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_RemoveVertex(t *testing.T) {
	g := square(t)

	require.NoError(t, g.RemoveVertex(0))
	assert.False(t, g.HasVertex(0))
	assert.False(t, g.HasEdge(1, 0))
	assert.Equal(t, 2, g.EdgeCount())

	nbrs, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, nbrs)

	assert.ErrorIs(t, g.RemoveVertex(0), core.ErrVertexNotFound)
}

func TestGraph_VerticesAndEdgesSorted(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(5, 3, 0.1, 1))
	require.NoError(t, g.AddEdge(1, 4, 0.2, 2))

	assert.Equal(t, []int{1, 3, 4, 5}, g.Vertices())

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, 1, edges[0].ID)
	assert.Equal(t, 2, edges[1].ID)
	assert.Equal(t, 5, edges[0].From)
}

func TestGraph_CloneIsDeep(t *testing.T) {
	g := square(t)
	c := g.Clone()

	require.NoError(t, c.UpdateEdge(0, 1, func(e *core.Edge) { e.Weight = 0.99 }))
	require.NoError(t, c.RemoveVertex(3))

	orig, err := g.Edge(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.1, orig.Weight)
	assert.True(t, g.HasVertex(3))
	assert.Equal(t, 4, g.EdgeCount())

	// New edges on the clone continue the ID sequence.
	require.NoError(t, c.AddEdge(0, 2, 0.5, 5))
	ne, err := c.Edge(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, ne.ID)
}

func TestGraph_ConcurrentReadersAndUpdates(t *testing.T) {
	g := square(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = g.UpdateEdge(0, 1, func(e *core.Edge) { e.Capacity++ })
		}()
		go func() {
			defer wg.Done()
			_, _ = g.Neighbors(0)
			_ = g.Edges()
		}()
	}
	wg.Wait()

	e, err := g.Edge(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 60.0, e.Capacity)
}
