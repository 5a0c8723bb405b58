// SPDX-License-Identifier: MIT

package congestion_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routesim/congestion"
	"github.com/katalvlaran/routesim/core"
)

// grid builds the 4-cycle 0-1-2-3-0 plus the chord 0-2.
func grid(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 0.2, 5))
	require.NoError(t, g.AddEdge(1, 2, 0.4, 0.5))
	require.NoError(t, g.AddEdge(2, 3, 0.6, 2))
	require.NoError(t, g.AddEdge(3, 0, 0.8, 10))
	require.NoError(t, g.AddEdge(0, 2, 0.1, 1))

	return g
}

func edge(t *testing.T, g *core.Graph, u, v int) core.Edge {
	t.Helper()
	e, err := g.Edge(u, v)
	require.NoError(t, err)

	return e
}

func TestApply_TouchedOnceUntouchedUnchanged(t *testing.T) {
	g := grid(t)
	before := map[[2]int]core.Edge{}
	for _, e := range g.Edges() {
		before[[2]int{e.From, e.To}] = e
	}

	// 0-1 appears in two flows and in both orientations.
	paths := [][]int{{0, 1, 2}, {2, 1, 0}, {3, 0, 1}}
	rep, err := congestion.ApplyReport(g, paths)
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Edges)

	for k, old := range before {
		cur := edge(t, g, k[0], k[1])
		touched := k == [2]int{0, 1} || k == [2]int{1, 2} || k == [2]int{3, 0}
		if !touched {
			assert.Equal(t, old, cur, "edge %v must be unchanged", k)
			continue
		}
		assert.InDelta(t, math.Min(math.Pow(old.Weight, 0.3), 0.999), cur.Weight, 1e-12, "edge %v", k)
		assert.InDelta(t, math.Max(math.Pow(old.Capacity, 1.2), 0.001), cur.Capacity, 1e-12, "edge %v", k)
	}
}

func TestApply_Clamps(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 1.0, 0.0001))

	out, err := congestion.Apply(g, [][]int{{0, 1}})
	require.NoError(t, err)
	assert.Same(t, g, out)

	e := edge(t, g, 0, 1)
	assert.Equal(t, 0.999, e.Weight)
	assert.Equal(t, 0.001, e.Capacity)
}

func TestApply_MissingEdge(t *testing.T) {
	g := grid(t)

	_, err := congestion.Apply(g, [][]int{{0, 1, 3}})
	require.ErrorIs(t, err, congestion.ErrMissingEdge)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)

	// The step before the failure stays applied.
	assert.InDelta(t, math.Pow(0.2, 0.3), edge(t, g, 0, 1).Weight, 1e-12)

	_, err = congestion.Apply(nil, nil)
	assert.ErrorIs(t, err, congestion.ErrNilGraph)
}

func TestApply_CustomCurve(t *testing.T) {
	g := grid(t)

	_, err := congestion.Apply(g, [][]int{{2, 3}},
		congestion.WithLatencyExponent(0.5),
		congestion.WithCapacityExponent(2),
		congestion.WithBounds(0.7, 0.05),
	)
	require.NoError(t, err)

	e := edge(t, g, 2, 3)
	assert.InDelta(t, 0.7, e.Weight, 1e-12) // sqrt(0.6)=0.7746 clamped
	assert.InDelta(t, 4.0, e.Capacity, 1e-12)
}

func TestApply_EmptyAndSingleNodePaths(t *testing.T) {
	g := grid(t)
	before := g.Edges()

	rep, err := congestion.ApplyReport(g, [][]int{nil, {2}})
	require.NoError(t, err)
	assert.Zero(t, rep.Edges)
	assert.Equal(t, before, g.Edges())
}

// TestApply_Property checks the once-per-edge transform on random walks over
// a complete graph.
func TestApply_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	const n = 6
	properties.Property("each traversed edge is transformed exactly once", prop.ForAll(
		func(w, c float64, walk []int) bool {
			g := core.NewGraph()
			for u := 0; u < n; u++ {
				for v := u + 1; v < n; v++ {
					_ = g.AddEdge(u, v, w, c)
				}
			}
			// Collapse repeated vertices so every step is a real edge.
			path := make([]int, 0, len(walk))
			for _, x := range walk {
				if len(path) == 0 || path[len(path)-1] != x {
					path = append(path, x)
				}
			}
			if _, err := congestion.Apply(g, [][]int{path, path}); err != nil {
				return false
			}

			touched := map[[2]int]bool{}
			for i := 0; i+1 < len(path); i++ {
				u, v := path[i], path[i+1]
				if u > v {
					u, v = v, u
				}
				touched[[2]int{u, v}] = true
			}
			wantW := math.Min(math.Pow(w, 0.3), 0.999)
			wantC := math.Max(math.Pow(c, 1.2), 0.001)
			for _, e := range g.Edges() {
				if touched[[2]int{e.From, e.To}] {
					if math.Abs(e.Weight-wantW) > 1e-12 || math.Abs(e.Capacity-wantC) > 1e-9 {
						return false
					}
				} else if e.Weight != w || e.Capacity != c {
					return false
				}
				if e.Weight > 0.999 && touched[[2]int{e.From, e.To}] {
					return false
				}
			}
			return true
		},
		gen.Float64Range(0.001, 1),
		gen.Float64Range(0, 50),
		gen.SliceOf(gen.IntRange(0, n-1)),
	))

	properties.TestingRun(t)
}
