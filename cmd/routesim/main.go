// SPDX-License-Identifier: MIT

// Command routesim loads a BRITE topology and runs random-walk routing
// episodes over it, reporting rewards and outcomes.
//
//	routesim -config sim.toml
//
// When metrics.addr is set, Prometheus metrics are served on /metrics for
// the lifetime of the run.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/routesim/brite"
	"github.com/katalvlaran/routesim/builder"
	"github.com/katalvlaran/routesim/config"
	"github.com/katalvlaran/routesim/congestion"
	"github.com/katalvlaran/routesim/core"
	"github.com/katalvlaran/routesim/env"
	"github.com/katalvlaran/routesim/logging"
	"github.com/katalvlaran/routesim/reward"
	"github.com/katalvlaran/routesim/route"
	"github.com/katalvlaran/routesim/telemetry"
)

func main() {
	configPath := flag.String("config", "routesim.toml", "Path to configuration file (.toml, .yaml)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log, closer, err := logging.New(cfg.Log, os.Stdout)
	if err != nil {
		logrus.Fatalf("Failed to set up logging: %v", err)
	}
	defer closer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Infof("Received shutdown signal: %v", sig)
		cancel()
	}()

	tel := telemetry.NewRegistry()
	if cfg.Metrics.Addr != "" {
		srv := serveMetrics(cfg.Metrics.Addr, tel, log)
		defer func() {
			shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
			defer done()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	stats, err := run(ctx, cfg, tel, log)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Errorf("Run failed: %v", err)
		closer.Close()
		os.Exit(1)
	}
	log.WithFields(logrus.Fields{
		"episodes":     stats.Episodes,
		"reached":      stats.Reached,
		"timeout":      stats.Timeout,
		"aborted":      stats.Aborted,
		"total_reward": fmt.Sprintf("%.3f", stats.TotalReward),
	}).Info("Run complete")
}

func serveMetrics(addr string, tel *telemetry.Registry, log logrus.FieldLogger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(tel.Prometheus(), promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		log.Infof("Serving metrics on %s/metrics", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("Metrics server: %v", err)
		}
	}()

	return srv
}

// runStats aggregates the outcomes of a run.
type runStats struct {
	Episodes    int
	Reached     int
	Timeout     int
	Aborted     int
	TotalReward float64
}

// loadTopology reads the BRITE file or generates a Waxman topology.
func loadTopology(cfg config.Topology, log logrus.FieldLogger) (*core.Graph, error) {
	switch cfg.Source {
	case config.SourceWaxman:
		w := cfg.Waxman
		g, err := builder.BuildGraph(
			[]builder.Option{builder.WithSeed(w.Seed)},
			builder.Waxman(w.Nodes, w.Links, w.Alpha, w.Beta),
		)
		if err != nil {
			return nil, err
		}
		log.Infof("Generated Waxman topology: %d nodes, %d edges", g.VertexCount(), g.EdgeCount())
		return g, nil
	default:
		g, err := brite.LoadFile(cfg.File, brite.Options{
			NumNodes:      cfg.NumNodes,
			NumEdges:      cfg.NumEdges,
			CapacityScale: cfg.CapacityScale,
			Logger:        log,
		})
		if err != nil {
			return nil, err
		}
		log.Infof("Loaded topology %s: %d nodes, %d edges", cfg.File, g.VertexCount(), g.EdgeCount())
		return g, nil
	}
}

// run loads the topology and plays cfg.Simulation.Episodes episodes with a
// uniform random-walk agent.
func run(ctx context.Context, cfg *config.Config, tel *telemetry.Registry, log logrus.FieldLogger) (runStats, error) {
	var stats runStats

	g, err := loadTopology(cfg.Topology, log)
	if err != nil {
		return stats, err
	}

	policy, err := reward.ParsePolicy(cfg.Simulation.Policy)
	if err != nil {
		return stats, err
	}
	ev, err := reward.NewEvaluator(policy, reward.WithTimeoutFactor(cfg.Simulation.TimeoutFactor))
	if err != nil {
		return stats, err
	}

	e, err := env.New(g,
		env.WithFlows(cfg.Simulation.Flows),
		env.WithMaxSteps(cfg.Simulation.MaxSteps),
		env.WithSampler(route.NewSampler(
			route.WithSeed(cfg.Simulation.Seed),
			route.WithMaxAttempts(cfg.Simulation.MaxAttempts),
			route.WithLogger(log),
		)),
		env.WithEvaluator(ev),
		env.WithCongestion(
			congestion.WithLatencyExponent(cfg.Congestion.LatencyExponent),
			congestion.WithCapacityExponent(cfg.Congestion.CapacityExponent),
			congestion.WithBounds(cfg.Congestion.MaxWeight, cfg.Congestion.MinCapacity),
		),
		env.WithTelemetry(tel),
		env.WithLogger(log),
	)
	if err != nil {
		return stats, err
	}

	agent := rand.New(rand.NewSource(cfg.Simulation.Seed + 1))
	for i := 0; i < cfg.Simulation.Episodes; i++ {
		obs, err := e.Reset(ctx)
		if err != nil {
			return stats, fmt.Errorf("episode %d: %w", i, err)
		}

		var res env.StepResult
		for !res.Done() {
			if err = ctx.Err(); err != nil {
				return stats, err
			}
			hop := obs.Neighbors[agent.Intn(len(obs.Neighbors))]
			if res, err = e.Step(ctx, hop); err != nil {
				return stats, fmt.Errorf("episode %d: %w", i, err)
			}
			stats.TotalReward += res.Record.Reward()
			obs = res.Observation
		}

		stats.Episodes++
		switch res.Outcome {
		case telemetry.OutcomeReached:
			stats.Reached++
		case telemetry.OutcomeTimeout:
			stats.Timeout++
		case telemetry.OutcomeAborted:
			stats.Aborted++
		}

		ep := e.Episode()
		log.WithFields(logrus.Fields{
			"episode":    ep.ID,
			"source":     ep.Route.Source,
			"target":     ep.Route.Target,
			"steps":      ep.Steps,
			"outcome":    ep.Outcome,
			"flow_ratio": ep.FlowRatio,
		}).Info("Episode finished")
	}

	return stats, nil
}
