// SPDX-License-Identifier: MIT
//
// Package pipeline sequences the graph-preparation steps behind a single
// typed configuration: assembly, seed injection, test marking, degree
// pruning, Gaussian reweighting, top-K retention, an optional random
// train/test split, and the final random-walk transition computation.
//
// The orchestrator is deliberately thin. It resolves a Config — either
// built in code or decoded from YAML via LoadConfig — into explicit typed
// parameters, validates everything up front (fail fast, before any graph
// mutation), and then calls the assemble, weighting, and split packages
// in the contractual order:
//
//	Edges → InjectSeeds → MarkTestNodes → [PruneLowDegree]
//	      → [GaussianKernel] → [RetainTopK] → [split.Random]
//	      → ComputeRandomWalk
//
// Bracketed steps run only when their knob is present in the Config.
// ComputeRandomWalk always runs last, so the returned graph is fully
// populated and internally consistent for downstream propagation, which
// consumes it read-only (Transition, InjectedLabels, GoldLabels).
//
// Degenerate vertices (zero outgoing weight after pruning or filtering)
// are a warning, not an error; the orchestrator reports them through its
// slog.Logger (injectable via WithLogger).
package pipeline
