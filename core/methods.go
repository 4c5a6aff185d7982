// Package core: thread-safe Graph method implementations.
//
// Catalog mutations (vertex creation, edge writes, label bookkeeping)
// acquire the Graph write lock; queries acquire the read lock. Per-vertex
// maps returned by accessors are the live maps, not copies — the pipeline
// steps own them exclusively while they run (see doc.go).
package core

import "sort"

// Directed reports whether edges are interpreted as one-way.
// Complexity: O(1).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// SeedInjected reports whether any seed sequence has been processed.
// Complexity: O(1).
func (g *Graph) SeedInjected() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.seedInjected
}

// MarkSeedInjected sets the graph-level seed-injection flag.
// Called by assemble.InjectSeeds after any non-empty seed sequence.
// Complexity: O(1).
func (g *Graph) MarkSeedInjected() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.seedInjected = true
}

// EnsureVertex returns the vertex with the given ID, creating it if absent.
// A freshly created vertex carries the DummyLabel gold marker.
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1) amortized.
func (g *Graph) EnsureVertex(id VertexID) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if v, exists := g.vertices[id]; exists {
		return v, nil // no-op for existing vertex
	}
	v := newVertex(id)
	g.vertices[id] = v

	return v, nil
}

// Vertex returns the vertex with the given ID, or (nil, false) if absent.
// Complexity: O(1).
func (g *Graph) Vertex(id VertexID) (*Vertex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]

	return v, ok
}

// HasVertex reports whether a vertex with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id VertexID) bool {
	if id == "" {
		return false // empty ID considered absent
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.vertices[id]

	return exists
}

// SetEdge writes the directed adjacency entry source→target with the given
// weight, creating both endpoints on demand. Repeated writes to the same
// ordered pair overwrite (last write wins — never accumulate; summing
// would silently change the semantics downstream propagation expects).
// For undirected graphs the mirror entry target→source is written with
// equal weight.
// Returns ErrEmptyVertexID if either endpoint ID is empty.
// Complexity: O(1) amortized.
func (g *Graph) SetEdge(source, target VertexID, weight float64) error {
	if source == "" || target == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	// Ensure both endpoints exist (lazy creation with dummy marker).
	s, exists := g.vertices[source]
	if !exists {
		s = newVertex(source)
		g.vertices[source] = s
	}
	t, exists := g.vertices[target]
	if !exists {
		t = newVertex(target)
		g.vertices[target] = t
	}

	s.Neighbors[target] = weight
	if !g.directed {
		t.Neighbors[source] = weight
	}

	return nil
}

// SetGoldLabel records a ground-truth label score on the vertex.
// The DummyLabel placeholder is dropped on the first real gold label.
// Gold truth is set unconditionally — it is never subject to the
// injection cap.
// Returns ErrVertexNotFound if the vertex is absent,
// ErrEmptyLabelID if label is empty.
// Complexity: O(1).
func (g *Graph) SetGoldLabel(id VertexID, label LabelID, score float64) error {
	if label == "" {
		return ErrEmptyLabelID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	v, exists := g.vertices[id]
	if !exists {
		return ErrVertexNotFound
	}
	delete(v.GoldLabels, DummyLabel)
	v.GoldLabels[label] = score

	return nil
}

// InjectLabel exposes a label to the propagation algorithm as known
// supervision and flags the vertex as a seed. Cap accounting is the
// caller's concern (assemble.InjectSeeds owns the per-class counters).
// Returns ErrVertexNotFound if the vertex is absent,
// ErrEmptyLabelID if label is empty.
// Complexity: O(1).
func (g *Graph) InjectLabel(id VertexID, label LabelID, score float64) error {
	if label == "" {
		return ErrEmptyLabelID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	v, exists := g.vertices[id]
	if !exists {
		return ErrVertexNotFound
	}
	v.InjectedLabels[label] = score
	v.IsSeed = true

	return nil
}

// MarkTest flags the vertex as an evaluation node. The flag is independent
// of IsSeed: a vertex may be both when it carries an injected label and a
// separate gold assertion.
// Returns ErrVertexNotFound if the vertex is absent.
// Complexity: O(1).
func (g *Graph) MarkTest(id VertexID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	v, exists := g.vertices[id]
	if !exists {
		return ErrVertexNotFound
	}
	v.IsTest = true

	return nil
}

// VertexIDs returns all vertex IDs in sorted order, for deterministic
// iteration by the transforms and tests.
// Complexity: O(V log V).
func (g *Graph) VertexIDs() []VertexID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]VertexID, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// VerticesMap returns a shallow copy of the vertex catalog.
// Complexity: O(V).
func (g *Graph) VerticesMap() map[VertexID]*Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[VertexID]*Vertex, len(g.vertices))
	for id, v := range g.vertices {
		out[id] = v
	}

	return out
}

// VertexCount returns the total number of vertices. Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the total number of directed adjacency entries.
// In undirected graphs each edge contributes two entries.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var n int
	for _, v := range g.vertices {
		n += len(v.Neighbors)
	}

	return n
}

// Clone returns a deep copy of the Graph: flags, vertices, adjacency,
// labels, and any derived transition state. Useful for running several
// split experiments against one assembled graph.
// Complexity: O(V + E + L) where L is total label entries.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		directed:     g.directed,
		seedInjected: g.seedInjected,
		vertices:     make(map[VertexID]*Vertex, len(g.vertices)),
	}
	for id, v := range g.vertices {
		nv := &Vertex{
			ID:             v.ID,
			Neighbors:      cloneWeights(v.Neighbors),
			GoldLabels:     cloneScores(v.GoldLabels),
			InjectedLabels: cloneScores(v.InjectedLabels),
			IsSeed:         v.IsSeed,
			IsTest:         v.IsTest,
			PContinue:      v.PContinue,
			PInject:        v.PInject,
			PAbandon:       v.PAbandon,
		}
		if v.Transition != nil {
			nv.Transition = cloneWeights(v.Transition)
		}
		clone.vertices[id] = nv
	}

	return clone
}

// cloneWeights deep-copies a VertexID-keyed float map.
func cloneWeights(src map[VertexID]float64) map[VertexID]float64 {
	dst := make(map[VertexID]float64, len(src))
	for k, w := range src {
		dst[k] = w
	}

	return dst
}

// cloneScores deep-copies a LabelID-keyed float map.
func cloneScores(src map[LabelID]float64) map[LabelID]float64 {
	dst := make(map[LabelID]float64, len(src))
	for k, s := range src {
		dst[k] = s
	}

	return dst
}
