// SPDX-License-Identifier: MIT
// Package: propagraph/weighting
//
// topk.go — per-vertex top-K neighbor retention.
package weighting

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/propagraph/core"
)

// RetainTopK keeps, for every vertex, only the k outgoing neighbors with
// the largest edge weight and drops the rest. Ties are broken by
// ascending VertexID, a deterministic total order, so output is
// reproducible. A vertex with at most k neighbors is unchanged.
//
// The filter operates on outgoing adjacency only and does not
// symmetrize: a retained u→v entry does not guarantee v→u survives v's
// own filter, so an originally undirected graph may become effectively
// directed. That asymmetry is intentional kNN-graph behavior.
//
// Returns ErrNilGraph or ErrBadTopK before touching the graph.
// Complexity: O(V·d log d) where d is the maximum out-degree.
func RetainTopK(g *core.Graph, k int) error {
	if g == nil {
		return ErrNilGraph
	}
	if k <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadTopK, k)
	}

	vertices := g.VerticesMap()
	for _, id := range g.VertexIDs() {
		v := vertices[id]
		if len(v.Neighbors) <= k {
			continue
		}

		ranked := sortedNeighborIDs(v.Neighbors)
		kept := make(map[core.VertexID]float64, k)
		for _, n := range ranked[:k] {
			kept[n] = v.Neighbors[n]
		}
		v.Neighbors = kept
	}

	return nil
}

// sortedNeighborIDs ranks neighbor IDs by descending weight, ties by
// ascending VertexID.
func sortedNeighborIDs(neighbors map[core.VertexID]float64) []core.VertexID {
	ids := make([]core.VertexID, 0, len(neighbors))
	for n := range neighbors {
		ids = append(ids, n)
	}
	sort.Slice(ids, func(i, j int) bool {
		wi, wj := neighbors[ids[i]], neighbors[ids[j]]
		if wi != wj {
			return wi > wj
		}

		return ids[i] < ids[j]
	})

	return ids
}
