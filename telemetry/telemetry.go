// SPDX-License-Identifier: MIT

// Package telemetry exposes Prometheus collectors for the routing environment:
// route sampling, congestion, rewards and episode outcomes.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Episode outcomes used as label values of EpisodesTotal.
const (
	OutcomeReached = "reached"
	OutcomeTimeout = "timeout"
	OutcomeAborted = "aborted"
)

// Registry holds all collectors of the environment.
type Registry struct {
	// Route sampling
	RoutesSampled   prometheus.Counter
	SampleAttempts  prometheus.Counter
	SampleFailures  prometheus.Counter
	FlowsGenerated  prometheus.Counter
	EdgesCongested  prometheus.Counter
	TopologyMaxDeg  prometheus.Gauge
	StepRewards     *prometheus.HistogramVec
	EpisodesTotal   *prometheus.CounterVec
	EpisodeSteps    prometheus.Histogram
	EpisodeFlowRate prometheus.Histogram

	registry *prometheus.Registry
}

// NewRegistry creates a Registry backed by a fresh prometheus.Registry.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initSamplingMetrics()
	r.initEpisodeMetrics()

	return r
}

// Prometheus returns the underlying Prometheus registry, e.g. for promhttp.
func (r *Registry) Prometheus() *prometheus.Registry {
	return r.registry
}

func (r *Registry) initSamplingMetrics() {
	f := promauto.With(r.registry)

	r.RoutesSampled = f.NewCounter(prometheus.CounterOpts{
		Name: "routesim_routes_sampled_total",
		Help: "Connected source/target pairs returned by the route sampler",
	})
	r.SampleAttempts = f.NewCounter(prometheus.CounterOpts{
		Name: "routesim_route_sample_attempts_total",
		Help: "Random pairs drawn by the route sampler, including rejected ones",
	})
	r.SampleFailures = f.NewCounter(prometheus.CounterOpts{
		Name: "routesim_route_sample_failures_total",
		Help: "Sampling calls that gave up without a connected pair",
	})
	r.FlowsGenerated = f.NewCounter(prometheus.CounterOpts{
		Name: "routesim_flows_generated_total",
		Help: "Background flows generated at episode reset",
	})
	r.EdgesCongested = f.NewCounter(prometheus.CounterOpts{
		Name: "routesim_edges_congested_total",
		Help: "Edges whose latency and capacity were degraded by congestion",
	})
	r.TopologyMaxDeg = f.NewGauge(prometheus.GaugeOpts{
		Name: "routesim_topology_max_degree",
		Help: "Maximum vertex degree of the loaded topology",
	})
}

func (r *Registry) initEpisodeMetrics() {
	f := promauto.With(r.registry)

	r.StepRewards = f.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "routesim_step_reward",
		Help:    "Scalar reward returned per agent step",
		Buckets: []float64{-1.51, -1, -0.5, -0.1, 0, 0.1, 0.5, 1, 1.01},
	}, []string{"policy"})
	r.EpisodesTotal = f.NewCounterVec(prometheus.CounterOpts{
		Name: "routesim_episodes_total",
		Help: "Finished episodes by outcome",
	}, []string{"outcome"})
	r.EpisodeSteps = f.NewHistogram(prometheus.HistogramOpts{
		Name:    "routesim_episode_steps",
		Help:    "Agent steps taken per finished episode",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})
	r.EpisodeFlowRate = f.NewHistogram(prometheus.HistogramOpts{
		Name:    "routesim_episode_flow_ratio",
		Help:    "Bottleneck capacity of the agent path over the best achievable flow",
		Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
	})
}

// RecordSampling adds one sampler call: attempts drawn and whether it succeeded.
func (r *Registry) RecordSampling(attempts int, ok bool) {
	r.SampleAttempts.Add(float64(attempts))
	if ok {
		r.RoutesSampled.Inc()
		return
	}
	r.SampleFailures.Inc()
}

// RecordReward observes one step reward under the named policy.
func (r *Registry) RecordReward(policy string, reward float64) {
	r.StepRewards.WithLabelValues(policy).Observe(reward)
}

// RecordEpisode counts a finished episode.
func (r *Registry) RecordEpisode(outcome string, steps int) {
	r.EpisodesTotal.WithLabelValues(outcome).Inc()
	r.EpisodeSteps.Observe(float64(steps))
}
