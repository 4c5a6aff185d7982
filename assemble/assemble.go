// SPDX-License-Identifier: MIT
// Package: propagraph/assemble
//
// assemble.go — edge-list assembly, capped seed injection, test marking.
package assemble

import (
	"fmt"

	"github.com/katalvlaran/propagraph/core"
)

// Edges assembles the adjacency of g from an ordered edge list.
//
// For each record (s, t, w), both endpoints are created on demand (with
// the reserved dummy gold marker) and s→t is written with weight w; for
// undirected graphs the mirror t→s is written with equal weight. Repeated
// records for the same ordered pair overwrite — last write wins.
//
// The operation is total over any edge list: beyond a nil graph or an
// empty endpoint ID there are no failure modes.
// Complexity: O(E) amortized.
func Edges(g *core.Graph, edges []core.Edge) error {
	if g == nil {
		return ErrNilGraph
	}
	for _, e := range edges {
		if err := g.SetEdge(e.Source, e.Target, e.Weight); err != nil {
			return fmt.Errorf("assemble: edge %q→%q: %w", e.Source, e.Target, err)
		}
	}

	return nil
}

// InjectSeeds records supervision on g under a per-class injection cap.
//
// For each seed (v, label, score) whose vertex exists:
//
//  1. The gold label is recorded unconditionally — gold truth stays
//     available for evaluation even when injection is capped out.
//  2. If fewer than maxPerClass vertices carry label as an injected label
//     (counted across the whole graph) and v does not already carry it,
//     the label is injected, v becomes a seed, and the class counter
//     advances.
//
// Seeds referencing an absent vertex are silently dropped. After any
// non-empty seed sequence the graph-level seed-injected flag is set, even
// if every record was dropped or capped.
//
// The returned map holds the per-label injection counts of this call;
// counters are call-local, never package state.
// Complexity: O(S).
func InjectSeeds(g *core.Graph, seeds []core.Seed, maxPerClass int) (map[core.LabelID]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if maxPerClass < 0 {
		return nil, fmt.Errorf("assemble: cap %d: %w", maxPerClass, ErrBadSeedCap)
	}

	counts := make(map[core.LabelID]int)
	for _, s := range seeds {
		v, ok := g.Vertex(s.Vertex)
		if !ok {
			continue // seed files may reference a superset of vertices
		}
		if err := g.SetGoldLabel(s.Vertex, s.Label, s.Score); err != nil {
			return counts, fmt.Errorf("assemble: seed %q/%q: %w", s.Vertex, s.Label, err)
		}
		if counts[s.Label] >= maxPerClass {
			continue // class budget exhausted
		}
		if _, injected := v.InjectedLabels[s.Label]; injected {
			continue // never double-count a vertex for one label
		}
		if err := g.InjectLabel(s.Vertex, s.Label, s.Score); err != nil {
			return counts, fmt.Errorf("assemble: seed %q/%q: %w", s.Vertex, s.Label, err)
		}
		counts[s.Label]++
	}
	if len(seeds) > 0 {
		g.MarkSeedInjected()
	}

	return counts, nil
}

// MarkTestNodes records gold labels from test-label records and flags the
// referenced vertices as evaluation nodes.
//
// Unlike seeds, a test record naming a vertex absent from the graph is a
// fatal precondition violation: the pipeline must stop, since evaluation
// cannot proceed with a dangling reference.
// Complexity: O(T).
func MarkTestNodes(g *core.Graph, labels []core.Seed) error {
	if g == nil {
		return ErrNilGraph
	}
	for _, rec := range labels {
		if !g.HasVertex(rec.Vertex) {
			return fmt.Errorf("%w: %q", ErrVertexNotFound, rec.Vertex)
		}
		if err := g.SetGoldLabel(rec.Vertex, rec.Label, rec.Score); err != nil {
			return fmt.Errorf("assemble: test label %q/%q: %w", rec.Vertex, rec.Label, err)
		}
		if err := g.MarkTest(rec.Vertex); err != nil {
			return fmt.Errorf("assemble: test label %q: %w", rec.Vertex, err)
		}
	}

	return nil
}
