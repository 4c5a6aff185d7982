// Package core: central types for the label-propagation graph store.
//
// This file declares VertexID, LabelID, the external record types
// (Edge, Seed), Vertex, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// VertexID is the stable unique identifier of a graph node.
type VertexID string

// LabelID identifies a classification label/category.
type LabelID string

// DummyLabel is the reserved sentinel label assigned as the gold marker of
// every lazily created vertex. It never collides with caller labels and is
// excluded from all label accounting (Stats, seed caps, splits).
const DummyLabel LabelID = "__DUMMY__"

// dummyGoldScore is the score attached to the DummyLabel marker at
// vertex-creation time.
const dummyGoldScore = 1.0

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrEmptyLabelID indicates an operation received an empty label ID.
	ErrEmptyLabelID = errors.New("core: label ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Edge is an immutable edge record produced by an external record source.
// Weight is an opaque scalar; the Gaussian-kernel transform interprets it
// as a squared Euclidean distance between the endpoints' feature vectors.
type Edge struct {
	// Source is the origin vertex ID.
	Source VertexID

	// Target is the destination vertex ID.
	Target VertexID

	// Weight is the edge weight (or squared distance, pre-kernel).
	Weight float64
}

// Seed is an immutable supervision record produced by an external record
// source: an assertion that Vertex carries Label with the given Score.
type Seed struct {
	// Vertex is the ID of the vertex the assertion refers to.
	Vertex VertexID

	// Label is the asserted label.
	Label LabelID

	// Score is the assertion strength.
	Score float64
}

// Vertex represents a node in the graph together with its adjacency,
// label state, and derived random-walk probabilities.
//
// Fields are exported for direct single-writer access by the assembly and
// weighting transforms; catalog-level bookkeeping goes through Graph
// methods, which hold the Graph lock.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Graph.
	ID VertexID

	// Neighbors maps neighbor ID → outgoing edge weight.
	// Mutated in place by reweighting and pruning.
	Neighbors map[VertexID]float64

	// GoldLabels holds ground-truth label scores, independent of injection.
	GoldLabels map[LabelID]float64

	// InjectedLabels holds the labels exposed to propagation as known
	// supervision, subject to the per-class injection cap.
	InjectedLabels map[LabelID]float64

	// IsSeed reports whether at least one label was injected at this vertex.
	IsSeed bool

	// IsTest reports whether this vertex is an evaluation node.
	IsTest bool

	// Transition maps neighbor ID → continuation probability mass.
	// Nil until weighting.ComputeRandomWalk runs.
	Transition map[VertexID]float64

	// PContinue, PInject and PAbandon are the random-walk probability
	// masses for this vertex; they sum to 1 once computed.
	PContinue float64
	PInject   float64
	PAbandon  float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of the graph
// (true = directed, false = undirected; undirected is the default).
// Undirected graphs mirror every SetEdge into both adjacency directions.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the in-memory store for the label-propagation pipeline.
//
// It owns the VertexID → Vertex catalog and the graph-level seedInjected
// flag. mu guards the catalog and the flags; per-vertex state is mutated
// by the single-writer pipeline steps.
type Graph struct {
	mu sync.RWMutex // guards vertices, directed, seedInjected

	directed     bool // mirror edges when false
	seedInjected bool // set once any non-empty seed sequence is processed

	vertices map[VertexID]*Vertex // vertex ID → Vertex
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected with no seeds injected.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[VertexID]*Vertex),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// newVertex allocates a Vertex carrying the DummyLabel gold marker.
func newVertex(id VertexID) *Vertex {
	return &Vertex{
		ID:             id,
		Neighbors:      make(map[VertexID]float64),
		GoldLabels:     map[LabelID]float64{DummyLabel: dummyGoldScore},
		InjectedLabels: make(map[LabelID]float64),
	}
}
