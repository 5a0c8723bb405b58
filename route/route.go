// SPDX-License-Identifier: MIT

// Package route samples random source/target pairs and the shortest-path
// flows that load the network during an episode.
//
// Sampling draws a source uniformly from the vertex set, then redraws the
// target until it differs from the source, then keeps the pair only if the
// target is reachable. Unreachable pairs are silently discarded and the draw
// is repeated.
//
// Instead of looping forever on graphs that can never yield a pair, the
// Sampler checks preconditions up front and bounds the number of draws:
//
//	VertexCount < 2      → ErrTooFewVertices
//	EdgeCount == 0       → ErrNoConnectedPair
//	MaxAttempts exceeded → ErrRetriesExhausted
//
// Determinism: a Sampler built with the same seed on the same graph returns
// the same sequence of routes. A Sampler is not safe for concurrent use.
package route

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/routesim/bfs"
	"github.com/katalvlaran/routesim/core"
)

// DefaultMaxAttempts bounds the draws of a single SampleRoute call.
const DefaultMaxAttempts = 10000

// defaultSeed is used when callers pass seed==0.
const defaultSeed int64 = 1

// Sentinel errors returned by the Sampler.
var (
	ErrNilGraph         = errors.New("route: graph is nil")
	ErrTooFewVertices   = errors.New("route: graph needs at least two vertices")
	ErrNoConnectedPair  = errors.New("route: graph has no connected pair of vertices")
	ErrRetriesExhausted = errors.New("route: no connected pair found within attempt limit")
	ErrBadCount         = errors.New("route: flow count must be non-negative")
)

// Route is an ordered (Source, Target) pair, distinct and connected at the
// time it was sampled.
type Route struct {
	Source int
	Target int
}

// Sampler draws random routes from a graph.
type Sampler struct {
	rng          *rand.Rand
	maxAttempts  int
	log          logrus.FieldLogger
	lastAttempts int
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithSeed seeds the sampler's RNG. seed==0 selects the fixed default seed.
func WithSeed(seed int64) Option {
	return func(s *Sampler) {
		if seed == 0 {
			seed = defaultSeed
		}
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxAttempts bounds the draws per SampleRoute call. n ≤ 0 keeps the default.
func WithMaxAttempts(n int) Option {
	return func(s *Sampler) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// WithLogger sets the logger used for Debug-level sampling traces.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Sampler) {
		if l != nil {
			s.log = l
		}
	}
}

// NewSampler builds a Sampler with DefaultMaxAttempts and the default seed.
func NewSampler(opts ...Option) *Sampler {
	s := &Sampler{
		rng:         rand.New(rand.NewSource(defaultSeed)),
		maxAttempts: DefaultMaxAttempts,
		log:         logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// LastAttempts reports how many pairs the most recent SampleRoute (or each
// route of the most recent SampleFlows) drew, including the accepted one.
func (s *Sampler) LastAttempts() int {
	return s.lastAttempts
}

// SampleRoute returns a random connected (source, target) pair with
// source != target. The graph is not modified.
func (s *Sampler) SampleRoute(g *core.Graph) (Route, error) {
	r, _, err := s.sample(g)

	return r, err
}

// SampleFlows draws count independent routes and returns the hop-count
// shortest path of each, in draw order. Duplicate routes are kept.
func (s *Sampler) SampleFlows(g *core.Graph, count int) ([][]int, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCount, count)
	}
	paths := make([][]int, 0, count)
	total := 0
	for i := 0; i < count; i++ {
		_, path, err := s.sample(g)
		total += s.lastAttempts
		if err != nil {
			s.lastAttempts = total
			return nil, fmt.Errorf("route: flow %d: %w", i, err)
		}
		paths = append(paths, path)
	}
	s.lastAttempts = total

	return paths, nil
}

// sample performs the bounded draw loop and returns the accepted route with
// its hop-count shortest path.
func (s *Sampler) sample(g *core.Graph) (Route, []int, error) {
	s.lastAttempts = 0
	if g == nil {
		return Route{}, nil, ErrNilGraph
	}
	nodes := g.Vertices()
	if len(nodes) < 2 {
		return Route{}, nil, fmt.Errorf("%w: have %d", ErrTooFewVertices, len(nodes))
	}
	if g.EdgeCount() == 0 {
		return Route{}, nil, ErrNoConnectedPair
	}

	for s.lastAttempts < s.maxAttempts {
		s.lastAttempts++
		src := nodes[s.rng.Intn(len(nodes))]
		tgt := nodes[s.rng.Intn(len(nodes))]
		for src == tgt {
			tgt = nodes[s.rng.Intn(len(nodes))]
		}
		path, err := bfs.ShortestPath(g, src, tgt)
		if err != nil {
			// unreachable pair: draw again
			continue
		}
		s.log.WithFields(logrus.Fields{
			"source":   src,
			"target":   tgt,
			"hops":     len(path) - 1,
			"attempts": s.lastAttempts,
		}).Debug("route sampled")

		return Route{Source: src, Target: tgt}, path, nil
	}

	return Route{}, nil, fmt.Errorf("%w: %d attempts", ErrRetriesExhausted, s.maxAttempts)
}
