// SPDX-License-Identifier: MIT
// Package: propagraph/weighting
//
// prune.go — degree-based pruning.
package weighting

import (
	"fmt"

	"github.com/katalvlaran/propagraph/core"
)

// PruneLowDegree removes all outgoing adjacency of every vertex whose
// out-degree is strictly below threshold. Pruning is all-or-nothing per
// vertex — a vertex either keeps its full adjacency or loses it entirely
// — and is evaluated against the adjacency state at the time it runs.
//
// Pruned vertices are isolated, never deleted: downstream evaluation may
// still address them by ID. The returned slice lists the newly isolated
// vertices in ascending ID order (the DegenerateGraphWarning carrier for
// callers that log it).
//
// Returns ErrNilGraph or ErrBadThreshold before touching the graph.
// Complexity: O(V).
func PruneLowDegree(g *core.Graph, threshold int) ([]core.VertexID, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if threshold < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadThreshold, threshold)
	}

	var isolated []core.VertexID
	vertices := g.VerticesMap()
	for _, id := range g.VertexIDs() {
		v := vertices[id]
		if len(v.Neighbors) == 0 || len(v.Neighbors) >= threshold {
			continue
		}
		v.Neighbors = make(map[core.VertexID]float64)
		isolated = append(isolated, id)
	}

	return isolated, nil
}
