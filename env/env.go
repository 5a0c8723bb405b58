// SPDX-License-Identifier: MIT

// Package env drives routing episodes over a congested topology.
//
// An episode:
//
//	Reset: clone the pristine topology
//	       sample background flows and congest the edges they use
//	       sample the agent's (source, target) route
//	Step:  move to a neighbor of the current vertex and score the walk
//
// The episode ends when the reward policy says so (arrival or timeout) or
// when the step cap is reached; the cap matters for the Simple policy, which
// never times out on its own. Every episode carries a UUID used to correlate
// its log lines.
//
// An Env is not safe for concurrent use.
package env

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/routesim/congestion"
	"github.com/katalvlaran/routesim/core"
	"github.com/katalvlaran/routesim/pathmetric"
	"github.com/katalvlaran/routesim/reward"
	"github.com/katalvlaran/routesim/route"
	"github.com/katalvlaran/routesim/telemetry"
	"github.com/katalvlaran/routesim/topology"
)

// Defaults.
const (
	DefaultFlows    = 10
	DefaultMaxSteps = 10000
)

// Sentinel errors.
var (
	ErrNilGraph      = errors.New("env: topology is nil")
	ErrNotReset      = errors.New("env: Reset must be called first")
	ErrEpisodeDone   = errors.New("env: episode is finished")
	ErrInvalidAction = errors.New("env: next hop is not a neighbor")
	ErrBadOption     = errors.New("env: bad option")
)

// Observation is what the agent sees before choosing its next hop.
type Observation struct {
	Current   int
	Target    int
	Neighbors []int
	// MaxDegree sizes the action space; it is a property of the topology.
	MaxDegree int
}

// StepResult is returned by Step.
type StepResult struct {
	Observation Observation
	Record      reward.Record
	// Outcome is empty while the episode runs, otherwise one of the
	// telemetry.Outcome* values.
	Outcome string
}

// Done reports whether the step ended the episode.
func (s StepResult) Done() bool {
	return s.Outcome != ""
}

// Episode describes the current or last episode.
type Episode struct {
	ID      uuid.UUID
	Route   route.Route
	Path    []int
	Steps   int
	Outcome string
	// FlowRatio is the agent path's bottleneck capacity over the max flow
	// between source and target; set only when the target was reached.
	FlowRatio float64
}

// Env is a routing environment over a fixed topology.
type Env struct {
	pristine  *core.Graph
	work      *core.Graph
	maxDegree int

	flows      int
	maxSteps   int
	sampler    *route.Sampler
	evaluator  *reward.Evaluator
	congestion []congestion.Option
	tel        *telemetry.Registry
	log        logrus.FieldLogger

	ep    Episode
	ready bool
	err   error
}

// Option configures an Env.
type Option func(*Env)

// WithFlows sets the number of background flows per episode.
func WithFlows(n int) Option {
	return func(e *Env) {
		if n < 0 {
			e.err = fmt.Errorf("%w: flows %d", ErrBadOption, n)
			return
		}
		e.flows = n
	}
}

// WithMaxSteps caps the number of steps per episode.
func WithMaxSteps(n int) Option {
	return func(e *Env) {
		if n <= 0 {
			e.err = fmt.Errorf("%w: max steps %d", ErrBadOption, n)
			return
		}
		e.maxSteps = n
	}
}

// WithSampler replaces the default route sampler.
func WithSampler(s *route.Sampler) Option {
	return func(e *Env) {
		if s != nil {
			e.sampler = s
		}
	}
}

// WithEvaluator replaces the default Shaped evaluator.
func WithEvaluator(ev *reward.Evaluator) Option {
	return func(e *Env) {
		if ev != nil {
			e.evaluator = ev
		}
	}
}

// WithCongestion passes options to congestion.ApplyReport.
func WithCongestion(opts ...congestion.Option) Option {
	return func(e *Env) {
		e.congestion = append(e.congestion, opts...)
	}
}

// WithTelemetry records metrics into r.
func WithTelemetry(r *telemetry.Registry) Option {
	return func(e *Env) {
		if r != nil {
			e.tel = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Env) {
		if l != nil {
			e.log = l
		}
	}
}

// New builds an Env over g. g itself is never modified; every episode works
// on a fresh clone.
func New(g *core.Graph, opts ...Option) (*Env, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	e := &Env{
		pristine: g,
		flows:    DefaultFlows,
		maxSteps: DefaultMaxSteps,
		sampler:  route.NewSampler(),
		log:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.err != nil {
		return nil, e.err
	}
	if e.evaluator == nil {
		ev, err := reward.NewEvaluator(reward.Shaped)
		if err != nil {
			return nil, err
		}
		e.evaluator = ev
	}
	if e.tel == nil {
		e.tel = telemetry.NewRegistry()
	}

	sum, err := topology.Summarize(g)
	if err != nil {
		return nil, fmt.Errorf("env: %w", err)
	}
	e.maxDegree = sum.MaxDegree
	e.tel.TopologyMaxDeg.Set(float64(sum.MaxDegree))
	e.log.WithFields(logrus.Fields{
		"vertices":   sum.Vertices,
		"edges":      sum.Edges,
		"max_degree": sum.MaxDegree,
		"components": sum.Components,
	}).Debug("env topology")

	return e, nil
}

// Graph returns the working (congested) graph of the current episode, or nil
// before the first Reset.
func (e *Env) Graph() *core.Graph {
	return e.work
}

// Episode returns a copy of the current episode state.
func (e *Env) Episode() Episode {
	ep := e.ep
	ep.Path = append([]int(nil), e.ep.Path...)

	return ep
}

// Reset starts a new episode.
func (e *Env) Reset(ctx context.Context) (Observation, error) {
	if err := ctx.Err(); err != nil {
		return Observation{}, err
	}
	e.ready = false
	work := e.pristine.Clone()

	// 1) Background flows and their congestion.
	flows, err := e.sampler.SampleFlows(work, e.flows)
	e.tel.SampleAttempts.Add(float64(e.sampler.LastAttempts()))
	if err != nil {
		e.tel.SampleFailures.Inc()
		return Observation{}, fmt.Errorf("env: flows: %w", err)
	}
	e.tel.FlowsGenerated.Add(float64(len(flows)))

	rep, err := congestion.ApplyReport(work, flows, e.congestion...)
	if err != nil {
		return Observation{}, fmt.Errorf("env: %w", err)
	}
	e.tel.EdgesCongested.Add(float64(rep.Edges))

	// 2) Agent route on the congested graph.
	r, err := e.sampler.SampleRoute(work)
	e.tel.RecordSampling(e.sampler.LastAttempts(), err == nil)
	if err != nil {
		return Observation{}, fmt.Errorf("env: route: %w", err)
	}

	e.work = work
	e.ep = Episode{
		ID:    uuid.New(),
		Route: r,
		Path:  []int{r.Source},
	}
	e.ready = true

	e.log.WithFields(logrus.Fields{
		"episode":   e.ep.ID,
		"source":    r.Source,
		"target":    r.Target,
		"flows":     len(flows),
		"congested": rep.Edges,
	}).Debug("episode reset")

	return e.observe(r.Source)
}

// Step moves the agent to nextHop, which must neighbor the current vertex.
// An invalid action leaves the episode unchanged.
func (e *Env) Step(ctx context.Context, nextHop int) (StepResult, error) {
	if !e.ready {
		return StepResult{}, ErrNotReset
	}
	if e.ep.Outcome != "" {
		return StepResult{}, ErrEpisodeDone
	}
	cur := e.ep.Path[len(e.ep.Path)-1]
	if !e.work.HasEdge(cur, nextHop) {
		return StepResult{}, fmt.Errorf("%w: %d -> %d", ErrInvalidAction, cur, nextHop)
	}

	path := append(e.ep.Path, nextHop)
	rec, err := e.evaluator.Evaluate(e.work, e.ep.Route.Target, path)
	if err != nil {
		return StepResult{}, fmt.Errorf("env: %w", err)
	}
	e.ep.Path = path
	e.ep.Steps++
	e.tel.RecordReward(e.evaluator.Policy().String(), rec.Reward())

	outcome := ""
	switch {
	case rec.Done && nextHop == e.ep.Route.Target:
		outcome = telemetry.OutcomeReached
	case rec.Done:
		outcome = telemetry.OutcomeTimeout
	case e.ep.Steps >= e.maxSteps:
		outcome = telemetry.OutcomeAborted
	}
	if outcome != "" {
		if err = e.finish(ctx, outcome); err != nil {
			return StepResult{}, err
		}
	}

	obs, err := e.observe(nextHop)
	if err != nil {
		return StepResult{}, err
	}

	return StepResult{Observation: obs, Record: rec, Outcome: outcome}, nil
}

func (e *Env) finish(ctx context.Context, outcome string) error {
	e.ep.Outcome = outcome
	e.tel.RecordEpisode(outcome, e.ep.Steps)

	fields := logrus.Fields{
		"episode": e.ep.ID,
		"outcome": outcome,
		"steps":   e.ep.Steps,
	}
	if outcome == telemetry.OutcomeReached {
		got, err := pathmetric.FlowValue(e.work, e.ep.Path)
		if err != nil {
			return fmt.Errorf("env: %w", err)
		}
		best, err := pathmetric.BestFlow(ctx, e.work, e.ep.Route.Source, e.ep.Route.Target)
		if err != nil {
			return fmt.Errorf("env: best flow: %w", err)
		}
		if best > 0 {
			e.ep.FlowRatio = got / best
			e.tel.EpisodeFlowRate.Observe(e.ep.FlowRatio)
		}
		fields["flow_ratio"] = e.ep.FlowRatio
	}
	e.log.WithFields(fields).Debug("episode finished")

	return nil
}

func (e *Env) observe(cur int) (Observation, error) {
	nbrs, err := e.work.Neighbors(cur)
	if err != nil {
		return Observation{}, fmt.Errorf("env: %w", err)
	}

	return Observation{
		Current:   cur,
		Target:    e.ep.Route.Target,
		Neighbors: nbrs,
		MaxDegree: e.maxDegree,
	}, nil
}
