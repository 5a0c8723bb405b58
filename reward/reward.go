// SPDX-License-Identifier: MIT

package reward

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/routesim/astar"
	"github.com/katalvlaran/routesim/core"
	"github.com/katalvlaran/routesim/pathmetric"
)

// Reward constants.
const (
	OptimalArrival    = 1.01
	SuboptimalArrival = -1.51
	NoProgress        = -1.0
	Arrival           = 1.0
	Oscillation       = -1.0
)

// DefaultTimeoutFactor multiplies |V| to obtain the Shaped horizon.
const DefaultTimeoutFactor = 10

// Sentinel errors.
var (
	ErrNilGraph      = errors.New("reward: graph is nil")
	ErrShortPath     = errors.New("reward: path too short")
	ErrUnknownPolicy = errors.New("reward: unknown policy")
)

// Policy selects the reward function.
type Policy int

const (
	// Shaped rewards progress measured by A* cost-to-go and times out.
	Shaped Policy = iota + 1
	// Simple penalizes latency and back-and-forth moves.
	Simple
)

// String returns the lowercase policy name.
func (p Policy) String() string {
	switch p {
	case Shaped:
		return "shaped"
	case Simple:
		return "simple"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy maps "shaped" or "simple" (case-insensitive) to a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shaped":
		return Shaped, nil
	case "simple":
		return Simple, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// Record is the outcome of one evaluation.
type Record struct {
	// Values[0] is the reward; Values[1:] are optional diagnostics
	// (path length, flow value).
	Values []float64
	Done   bool
}

// Reward returns the scalar reward.
func (r Record) Reward() float64 {
	if len(r.Values) == 0 {
		return 0
	}
	return r.Values[0]
}

// Evaluator computes rewards under a fixed Policy.
type Evaluator struct {
	policy        Policy
	heuristic     astar.Heuristic
	timeoutFactor int
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithHeuristic sets the A* heuristic used by Shaped.
func WithHeuristic(h astar.Heuristic) Option {
	return func(ev *Evaluator) {
		if h != nil {
			ev.heuristic = h
		}
	}
}

// WithTimeoutFactor changes the Shaped horizon to factor·|V|. factor ≤ 0 keeps the default.
func WithTimeoutFactor(factor int) Option {
	return func(ev *Evaluator) {
		if factor > 0 {
			ev.timeoutFactor = factor
		}
	}
}

// NewEvaluator returns an Evaluator for p.
func NewEvaluator(p Policy, opts ...Option) (*Evaluator, error) {
	if p != Shaped && p != Simple {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, int(p))
	}
	ev := &Evaluator{
		policy:        p,
		heuristic:     astar.Zero,
		timeoutFactor: DefaultTimeoutFactor,
	}
	for _, opt := range opts {
		opt(ev)
	}

	return ev, nil
}

// Policy returns the evaluator's policy.
func (ev *Evaluator) Policy() Policy {
	return ev.policy
}

// Horizon returns the path length beyond which Shaped times out on g.
func (ev *Evaluator) Horizon(g *core.Graph) int {
	return ev.timeoutFactor * g.VertexCount()
}

// Evaluate scores path under the evaluator's policy.
func (ev *Evaluator) Evaluate(g *core.Graph, target int, path []int) (Record, error) {
	if g == nil {
		return Record{}, ErrNilGraph
	}
	switch ev.policy {
	case Shaped:
		return ev.shaped(g, target, path)
	case Simple:
		return ev.simple(g, target, path)
	default:
		return Record{}, fmt.Errorf("%w: %d", ErrUnknownPolicy, int(ev.policy))
	}
}

func (ev *Evaluator) costToGo(g *core.Graph, from, target int) (float64, error) {
	c, err := astar.PathLength(g, from, target, astar.WithHeuristic(ev.heuristic))
	if err != nil {
		return 0, fmt.Errorf("reward: cost from %d to %d: %w", from, target, err)
	}

	return c, nil
}

func (ev *Evaluator) shaped(g *core.Graph, target int, path []int) (Record, error) {
	n := len(path)
	if n < 2 {
		return Record{}, fmt.Errorf("%w: shaped needs 2 vertices, got %d", ErrShortPath, n)
	}
	prev, cur := path[n-2], path[n-1]

	c2, err := ev.costToGo(g, prev, target)
	if err != nil {
		return Record{}, err
	}

	if cur == target {
		length, flow, err := diagnostics(g, path)
		if err != nil {
			return Record{}, err
		}
		lastHop, err := pathmetric.Length(g, path[n-2:])
		if err != nil {
			return Record{}, fmt.Errorf("reward: %w", err)
		}
		r := SuboptimalArrival
		if c2 == lastHop {
			r = OptimalArrival
		}
		return Record{Values: []float64{r, length, flow}, Done: true}, nil
	}

	c1, err := ev.costToGo(g, cur, target)
	if err != nil {
		return Record{}, err
	}
	r := NoProgress
	if c1 < c2 {
		r = c2 - c1
	}
	if n > ev.Horizon(g) {
		return Record{Values: []float64{r, 0, 0}, Done: true}, nil
	}

	return Record{Values: []float64{r}}, nil
}

func (ev *Evaluator) simple(g *core.Graph, target int, path []int) (Record, error) {
	n := len(path)
	if n < 1 {
		return Record{}, fmt.Errorf("%w: empty path", ErrShortPath)
	}
	length, flow, err := diagnostics(g, path)
	if err != nil {
		return Record{}, err
	}

	cur := path[n-1]
	switch {
	case cur == target:
		return Record{Values: []float64{Arrival, length, flow}, Done: true}, nil
	case n >= 3 && cur == path[n-3]:
		return Record{Values: []float64{Oscillation}}, nil
	case n < 2:
		return Record{}, fmt.Errorf("%w: simple needs a step to score latency", ErrShortPath)
	}

	e, err := g.Edge(path[n-1], path[n-2])
	if err != nil {
		return Record{}, fmt.Errorf("reward: last step: %w", err)
	}

	return Record{Values: []float64{-e.Weight}}, nil
}

// diagnostics returns the latency length and bottleneck flow of path.
func diagnostics(g *core.Graph, path []int) (float64, float64, error) {
	length, err := pathmetric.Length(g, path)
	if err != nil {
		return 0, 0, fmt.Errorf("reward: %w", err)
	}
	flow, err := pathmetric.FlowValue(g, path)
	if err != nil {
		return 0, 0, fmt.Errorf("reward: %w", err)
	}

	return length, flow, nil
}
