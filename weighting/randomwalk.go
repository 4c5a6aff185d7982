// SPDX-License-Identifier: MIT
// Package: propagraph/weighting
//
// randomwalk.go — per-vertex random-walk transition probabilities.
package weighting

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/propagraph/core"
)

// ComputeRandomWalk derives every vertex's transition model from its
// current adjacency: the continuation/injection/abandonment split defined
// in the package doc, plus the per-neighbor transition entries
//
//	v.Transition[n] = p_cont(v) · w(v,n) / W(v).
//
// The computation rebuilds each vertex's transition state from scratch,
// so it is safe — and required — to re-run after seeds are injected or
// weights change: it is the final derived state downstream propagation
// consumes.
//
// Guarantees, for every vertex within Tolerance:
//
//   - p_cont + p_inj + p_abnd = 1;
//   - Σ v.Transition = p_cont;
//   - p_inj = 0 when the vertex has no injected labels;
//   - W(v) = 0 ⇒ p_cont = 0 (degenerate vertex, listed in the Report).
//
// Returns ErrNilGraph or ErrBadBeta before touching the graph.
// Complexity: O(V + E).
func ComputeRandomWalk(g *core.Graph, beta float64) (*Report, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if beta < minBeta || math.IsNaN(beta) {
		return nil, fmt.Errorf("%w: got %v", ErrBadBeta, beta)
	}

	report := &Report{}
	vertices := g.VerticesMap()
	for _, id := range g.VertexIDs() {
		v := vertices[id]

		// Collect weights in the deterministic ranked order; the order is
		// irrelevant to the sums but keeps float rounding reproducible.
		ranked := sortedNeighborIDs(v.Neighbors)
		weights := make([]float64, len(ranked))
		for i, n := range ranked {
			weights[i] = v.Neighbors[n]
		}
		total := floats.Sum(weights)

		var entropy, cont float64
		if total > 0 {
			// Normalize into a distribution and measure its entropy.
			floats.Scale(1/total, weights)
			entropy = stat.Entropy(weights)
			cont = math.Log(beta) / math.Log(beta+math.Exp(entropy))
		} else {
			report.Degenerate = append(report.Degenerate, id)
		}

		var inject float64
		if len(v.InjectedLabels) > 0 {
			inject = (1 - cont) * math.Sqrt(entropy)
		}
		norm := math.Max(cont+inject, 1)

		v.PContinue = cont / norm
		v.PInject = inject / norm
		v.PAbandon = 1 - v.PContinue - v.PInject

		v.Transition = make(map[core.VertexID]float64, len(ranked))
		for i, n := range ranked {
			// weights[i] already holds w(v,n)/W(v) after Scale.
			v.Transition[n] = v.PContinue * weights[i]
		}
	}

	return report, nil
}
