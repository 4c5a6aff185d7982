// SPDX-License-Identifier: MIT
// Package: propagraph/split
//
// split.go — uniform train/test partition over gold-labeled vertices.
package split

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/katalvlaran/propagraph/assemble"
	"github.com/katalvlaran/propagraph/core"
)

// Random partitions the gold-labeled vertices of g: a uniformly random
// ⌈fraction·n⌉ of them (rounded) become injected seeds via
// assemble.InjectSeeds — so the per-class cap applies — and the rest are
// marked as test nodes. Vertices whose only gold entry is the reserved
// dummy marker are not candidates.
//
// fraction must lie in (0,1) and an RNG must be supplied via WithSource
// or WithSeed; both are validated before any graph mutation. The draw
// uses uniform sampling without replacement over the sorted candidate
// list, so a fixed seed yields a fixed partition.
//
// The caller must re-run weighting.ComputeRandomWalk afterwards — the
// partition changes injected labels, which the transition model depends
// on.
// Complexity: O(V + n log n + L) where n is the candidate count.
func Random(g *core.Graph, fraction float64, maxPerClass int, opts ...Option) (*Result, error) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if fraction <= 0 || fraction >= 1 || math.IsNaN(fraction) {
		return nil, fmt.Errorf("%w: got %v", ErrBadFraction, fraction)
	}
	if cfg.src == nil {
		return nil, ErrNeedRandSource
	}

	candidates := goldLabeled(g)
	trainN := int(math.Round(fraction * float64(len(candidates))))
	if trainN > len(candidates) {
		trainN = len(candidates)
	}

	// Uniform draw without replacement over candidate indexes.
	// sampleuv rejects an empty draw, so skip it when the rounded train
	// size is zero (tiny fraction over a tiny candidate set).
	drawn := make(map[int]bool, trainN)
	if trainN > 0 {
		idxs := make([]int, trainN)
		sampleuv.WithoutReplacement(idxs, len(candidates), cfg.src)
		for _, i := range idxs {
			drawn[i] = true
		}
	}

	result := &Result{Injected: make(map[core.LabelID]int)}
	var seeds []core.Seed
	for i, id := range candidates {
		if drawn[i] {
			result.Train = append(result.Train, id)
			seeds = append(seeds, goldSeeds(g, id)...)
			continue
		}
		result.Test = append(result.Test, id)
		if err := g.MarkTest(id); err != nil {
			return nil, fmt.Errorf("split: mark test %q: %w", id, err)
		}
	}

	counts, err := assemble.InjectSeeds(g, seeds, maxPerClass)
	if err != nil {
		return nil, fmt.Errorf("split: inject train seeds: %w", err)
	}
	result.Injected = counts

	return result, nil
}

// goldLabeled returns the IDs of vertices carrying at least one real
// (non-dummy) gold label, in ascending order.
func goldLabeled(g *core.Graph) []core.VertexID {
	vertices := g.VerticesMap()
	var ids []core.VertexID
	for _, id := range g.VertexIDs() {
		if hasRealGold(vertices[id]) {
			ids = append(ids, id)
		}
	}

	return ids
}

// hasRealGold reports whether v carries a gold label other than the
// reserved dummy marker.
func hasRealGold(v *core.Vertex) bool {
	for label := range v.GoldLabels {
		if label != core.DummyLabel {
			return true
		}
	}

	return false
}

// goldSeeds converts a vertex's real gold labels into Seed records, in
// sorted label order for a deterministic injection sequence.
func goldSeeds(g *core.Graph, id core.VertexID) []core.Seed {
	v, _ := g.Vertex(id)
	labels := make([]core.LabelID, 0, len(v.GoldLabels))
	for label := range v.GoldLabels {
		if label == core.DummyLabel {
			continue
		}
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

	seeds := make([]core.Seed, 0, len(labels))
	for _, label := range labels {
		seeds = append(seeds, core.Seed{Vertex: id, Label: label, Score: v.GoldLabels[label]})
	}

	return seeds
}
