// SPDX-License-Identifier: MIT
// Package: propagraph/pipeline
//
// pipeline.go — the orchestrator: Config in, finished Graph out.
package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/propagraph/assemble"
	"github.com/katalvlaran/propagraph/core"
	"github.com/katalvlaran/propagraph/split"
	"github.com/katalvlaran/propagraph/weighting"
)

// Options configures orchestration concerns (not graph semantics).
type Options struct {
	logger *slog.Logger
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// WithLogger sets the structured logger used for step reporting and
// degenerate-vertex warnings. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("pipeline: WithLogger requires a non-nil *slog.Logger")
	}

	return func(o *Options) { o.logger = l }
}

// Run executes one full preparation pipeline over externally parsed
// records and returns the finished graph, ready for read-only consumption
// by downstream propagation.
//
// Step order follows the package doc. Validation happens before any graph
// mutation; a returned error therefore means no partial pipeline state
// exists (the graph under construction is discarded).
//
// testLabels follow the strict reference policy of
// assemble.MarkTestNodes: a record naming an unknown vertex aborts the
// run. Seeds follow the lenient policy and may reference a superset of
// the graph.
func Run(cfg Config, edges []core.Edge, seeds []core.Seed, testLabels []core.Seed, opts ...Option) (*core.Graph, error) {
	opt := Options{logger: slog.Default()}
	for _, o := range opts {
		o(&opt)
	}
	log := opt.logger

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := core.NewGraph(core.WithDirected(cfg.Directed))
	if err := assemble.Edges(g, edges); err != nil {
		return nil, err
	}

	counts, err := assemble.InjectSeeds(g, seeds, cfg.MaxSeedsPerClass)
	if err != nil {
		return nil, err
	}
	for label, n := range counts {
		log.Debug("seeds injected", "label", string(label), "count", n, "cap", cfg.MaxSeedsPerClass)
	}

	if err = assemble.MarkTestNodes(g, testLabels); err != nil {
		return nil, err
	}

	if cfg.PruneThreshold != nil {
		isolated, perr := weighting.PruneLowDegree(g, *cfg.PruneThreshold)
		if perr != nil {
			return nil, perr
		}
		if len(isolated) > 0 {
			log.Warn("degree pruning isolated vertices",
				"threshold", *cfg.PruneThreshold, "count", len(isolated))
		}
	}

	if cfg.SigmaFactor != nil {
		if err = weighting.GaussianKernel(g, *cfg.SigmaFactor); err != nil {
			return nil, err
		}
	}

	if cfg.TopK != nil {
		if err = weighting.RetainTopK(g, *cfg.TopK); err != nil {
			return nil, err
		}
	}

	if cfg.TrainFraction != nil {
		res, serr := split.Random(g, *cfg.TrainFraction, cfg.MaxSeedsPerClass, split.WithSeed(*cfg.Seed))
		if serr != nil {
			return nil, fmt.Errorf("pipeline: split: %w", serr)
		}
		log.Info("train/test split applied",
			"train", len(res.Train), "test", len(res.Test), "fraction", *cfg.TrainFraction)
	}

	report, err := weighting.ComputeRandomWalk(g, cfg.Beta)
	if err != nil {
		return nil, err
	}
	if len(report.Degenerate) > 0 {
		log.Warn("degenerate vertices after weighting",
			"count", len(report.Degenerate), "beta", cfg.Beta)
	}

	stats := g.Stats()
	log.Info("graph prepared",
		"vertices", stats.VertexCount,
		"edges", stats.EdgeCount,
		"seeds", stats.SeedCount,
		"test", stats.TestCount,
		"isolated", stats.IsolatedCount)

	return g, nil
}
