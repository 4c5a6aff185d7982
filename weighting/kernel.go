// SPDX-License-Identifier: MIT
// Package: propagraph/weighting
//
// kernel.go — Gaussian-kernel reweighting of edge weights.
package weighting

import (
	"fmt"
	"math"

	"github.com/katalvlaran/propagraph/core"
)

// GaussianKernel replaces every directed adjacency weight w with
// exp(-w / (2·σ²)), interpreting the stored weight as a squared Euclidean
// distance between the endpoints' underlying feature vectors. The graph
// only sees the opaque scalar; no feature vectors are recovered.
//
// Must run before ComputeRandomWalk and at most once per graph: the
// transform is not idempotent, and re-application corrupts weights.
// Callers sequence it exactly once (pipeline.Run does).
//
// Returns ErrNilGraph or ErrBadSigma before touching the graph.
// Complexity: O(V + E).
func GaussianKernel(g *core.Graph, sigmaFactor float64) error {
	if g == nil {
		return ErrNilGraph
	}
	if sigmaFactor <= 0 || math.IsNaN(sigmaFactor) {
		return fmt.Errorf("%w: got %v", ErrBadSigma, sigmaFactor)
	}

	denom := 2 * sigmaFactor * sigmaFactor
	vertices := g.VerticesMap()
	for _, id := range g.VertexIDs() {
		v := vertices[id]
		for n, w := range v.Neighbors {
			v.Neighbors[n] = math.Exp(-w / denom)
		}
	}

	return nil
}
