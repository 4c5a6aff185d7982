// Package core: read-only diagnostic snapshot of a Graph.
package core

// GraphStats is a deterministic, read-only summary of a Graph: flags,
// catalog sizes, and label-injection accounting. Suitable for admission
// checks and test assertions; DummyLabel markers are excluded.
type GraphStats struct {
	// Directed reports the graph-wide edge interpretation.
	Directed bool

	// SeedInjected reports whether any seed sequence was processed.
	SeedInjected bool

	// VertexCount is the size of the vertex catalog.
	VertexCount int

	// EdgeCount is the number of directed adjacency entries.
	EdgeCount int

	// SeedCount is the number of vertices with IsSeed set.
	SeedCount int

	// TestCount is the number of vertices with IsTest set.
	TestCount int

	// IsolatedCount is the number of vertices with empty adjacency.
	IsolatedCount int

	// InjectionCounts maps each label to the number of vertices carrying
	// it as an injected label (the quantity bounded by the per-class cap).
	InjectionCounts map[LabelID]int
}

// Stats produces a snapshot of flags, counts, and per-label injection
// tallies in a single pass over the catalog.
// Complexity: O(V + E + L), Space O(labels).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		Directed:        g.directed,
		SeedInjected:    g.seedInjected,
		VertexCount:     len(g.vertices),
		InjectionCounts: make(map[LabelID]int),
	}
	for _, v := range g.vertices {
		stats.EdgeCount += len(v.Neighbors)
		if len(v.Neighbors) == 0 {
			stats.IsolatedCount++
		}
		if v.IsSeed {
			stats.SeedCount++
		}
		if v.IsTest {
			stats.TestCount++
		}
		for label := range v.InjectedLabels {
			if label == DummyLabel {
				continue
			}
			stats.InjectionCounts[label]++
		}
	}

	return &stats
}
