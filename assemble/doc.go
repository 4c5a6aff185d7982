// SPDX-License-Identifier: MIT
//
// Package assemble turns externally parsed Edge and Seed records into a
// populated core.Graph: adjacency assembly, seed injection under a
// per-class cap, and evaluation-node marking.
//
// The three operations are intentionally separable so a caller can
// assemble once and inject different supervision regimes (see the split
// package), but the usual sequence is:
//
//	g := core.NewGraph()                       // or core.WithDirected(true)
//	err := assemble.Edges(g, edges)            // adjacency, last write wins
//	counts, err := assemble.InjectSeeds(g, seeds, maxPerClass)
//	err = assemble.MarkTestNodes(g, testLabels)
//
// Error policy (strict, per operation):
//
//   - Edges is total over any edge list; only structural misuse
//     (nil graph, empty endpoint ID) fails.
//   - InjectSeeds silently drops seeds whose vertex is absent — seed
//     files legitimately reference a superset of the graph. Gold labels
//     are recorded unconditionally; injection is bounded per class across
//     the whole graph.
//   - MarkTestNodes treats a missing vertex as a fatal precondition
//     violation (ErrVertexNotFound, wrapped with the offending ID):
//     evaluation cannot proceed with a dangling reference.
//
// The per-label injection counters are owned by a single InjectSeeds call
// and returned to the caller — no package-level state, so the builder is
// freely callable in tests and repeated experiments.
package assemble
