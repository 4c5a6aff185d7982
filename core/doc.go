// Package core defines the central Graph and Vertex types for
// label-propagation graph preparation, together with the Edge and Seed
// record types produced by external sources.
//
// A Graph owns a catalog of vertices indexed by stable VertexID.
// Each Vertex carries:
//
//   - Neighbors:       outgoing adjacency, VertexID → edge weight.
//   - GoldLabels:      ground-truth label scores, used for evaluation.
//   - InjectedLabels:  label scores visible to the propagation algorithm,
//     bounded per class across the whole graph by the seed-injection cap.
//   - IsSeed, IsTest:  independent bookkeeping flags.
//   - Transition:      derived random-walk continuation probabilities,
//     populated only after weighting.ComputeRandomWalk.
//
// Vertices are created lazily as edges and seeds reference them
// (EnsureVertex), and are never deleted: pruning clears a vertex's
// adjacency, the vertex itself stays addressable by ID. A freshly created
// vertex carries the reserved DummyLabel gold marker until a real gold
// label is recorded.
//
// All catalog-level operations acquire the Graph's RWMutex, so concurrent
// readers are safe. The weighting transforms mutate Vertex state directly
// and assume exclusive access for the duration of each pipeline step; see
// the pipeline package for the sequencing contract.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrEmptyLabelID   - label ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
package core
