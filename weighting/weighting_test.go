// Package weighting_test verifies the Gaussian kernel, top-K retention,
// degree pruning, and the random-walk probability invariants.
package weighting_test

import (
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/propagraph/assemble"
	"github.com/katalvlaran/propagraph/core"
	"github.com/katalvlaran/propagraph/weighting"
)

// buildPath assembles the undirected path a—b—c with unit weights.
func buildPath(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, assemble.Edges(g, []core.Edge{
		{Source: "a", Target: "b", Weight: 1.0},
		{Source: "b", Target: "c", Weight: 1.0},
	}))

	return g
}

// ------------------------------------------------------------------------
// Gaussian kernel
// ------------------------------------------------------------------------

func TestGaussianKernel_TransformsEveryEntry(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, assemble.Edges(g, []core.Edge{
		{Source: "a", Target: "b", Weight: 2.0},
		{Source: "b", Target: "c", Weight: 8.0},
	}))

	require.NoError(t, weighting.GaussianKernel(g, 1.0))

	a, _ := g.Vertex("a")
	b, _ := g.Vertex("b")
	// w ← exp(-w / 2σ²) with σ = 1.
	assert.InDelta(t, math.Exp(-1.0), a.Neighbors["b"], 1e-12)
	assert.InDelta(t, math.Exp(-1.0), b.Neighbors["a"], 1e-12)
	assert.InDelta(t, math.Exp(-4.0), b.Neighbors["c"], 1e-12)
}

func TestGaussianKernel_Validation(t *testing.T) {
	assert.ErrorIs(t, weighting.GaussianKernel(nil, 1.0), weighting.ErrNilGraph)
	g := buildPath(t)
	assert.ErrorIs(t, weighting.GaussianKernel(g, 0), weighting.ErrBadSigma)
	assert.ErrorIs(t, weighting.GaussianKernel(g, -2.5), weighting.ErrBadSigma)

	// Failed validation must not touch the graph.
	a, _ := g.Vertex("a")
	assert.Equal(t, 1.0, a.Neighbors["b"])
}

// ------------------------------------------------------------------------
// Top-K retention
// ------------------------------------------------------------------------

func TestRetainTopK_KeepsExactlyTheLargest(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	var edges []core.Edge
	for i := 0; i < 10; i++ {
		edges = append(edges, core.Edge{
			Source: "hub",
			Target: core.VertexID(fmt.Sprintf("n%02d", i)),
			Weight: float64(i),
		})
	}
	require.NoError(t, assemble.Edges(g, edges))

	const k = 3
	require.NoError(t, weighting.RetainTopK(g, k))

	hub, _ := g.Vertex("hub")
	require.Len(t, hub.Neighbors, k)

	// Brute force: the retained set must be exactly the k largest weights.
	want := []float64{9, 8, 7}
	var got []float64
	for _, w := range hub.Neighbors {
		got = append(got, w)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(got)))
	assert.Equal(t, want, got)
}

func TestRetainTopK_TieBreakByVertexID(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, assemble.Edges(g, []core.Edge{
		{Source: "hub", Target: "z", Weight: 1.0},
		{Source: "hub", Target: "a", Weight: 1.0},
		{Source: "hub", Target: "m", Weight: 1.0},
	}))

	require.NoError(t, weighting.RetainTopK(g, 2))

	hub, _ := g.Vertex("hub")
	// Equal weights: ascending ID wins, deterministically.
	assert.Contains(t, hub.Neighbors, core.VertexID("a"))
	assert.Contains(t, hub.Neighbors, core.VertexID("m"))
	assert.NotContains(t, hub.Neighbors, core.VertexID("z"))
}

func TestRetainTopK_SmallVertexUnchanged(t *testing.T) {
	g := buildPath(t)
	require.NoError(t, weighting.RetainTopK(g, 5))

	b, _ := g.Vertex("b")
	assert.Len(t, b.Neighbors, 2)
}

func TestRetainTopK_DoesNotSymmetrize(t *testing.T) {
	// Star around "hub" plus a strong a—x edge. With k=1, "a" keeps only
	// x, while hub may keep a: the surviving graph is effectively
	// directed — intentional kNN behavior.
	g := core.NewGraph()
	require.NoError(t, assemble.Edges(g, []core.Edge{
		{Source: "hub", Target: "a", Weight: 5.0},
		{Source: "hub", Target: "b", Weight: 1.0},
		{Source: "a", Target: "x", Weight: 9.0},
	}))

	require.NoError(t, weighting.RetainTopK(g, 1))

	hub, _ := g.Vertex("hub")
	a, _ := g.Vertex("a")
	assert.Equal(t, map[core.VertexID]float64{"a": 5.0}, hub.Neighbors)
	assert.Equal(t, map[core.VertexID]float64{"x": 9.0}, a.Neighbors)
}

func TestRetainTopK_Validation(t *testing.T) {
	assert.ErrorIs(t, weighting.RetainTopK(nil, 1), weighting.ErrNilGraph)
	assert.ErrorIs(t, weighting.RetainTopK(core.NewGraph(), 0), weighting.ErrBadTopK)
}

// ------------------------------------------------------------------------
// Degree pruning
// ------------------------------------------------------------------------

func TestPruneLowDegree_AllOrNothing(t *testing.T) {
	// Path a—b—c with threshold 2: c (degree 1) is cleared, b (degree 2)
	// keeps both entries including b→c, a (degree 1) is cleared too.
	g := buildPath(t)

	isolated, err := weighting.PruneLowDegree(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{"a", "c"}, isolated)

	a, _ := g.Vertex("a")
	b, _ := g.Vertex("b")
	c, _ := g.Vertex("c")
	assert.Empty(t, a.Neighbors)
	assert.Empty(t, c.Neighbors)
	assert.Len(t, b.Neighbors, 2, "pruning must never partially truncate")

	// Vertices stay in the catalog.
	assert.Equal(t, 3, g.VertexCount())
}

func TestPruneLowDegree_ZeroThresholdIsNoop(t *testing.T) {
	g := buildPath(t)
	isolated, err := weighting.PruneLowDegree(g, 0)
	require.NoError(t, err)
	assert.Empty(t, isolated)
	assert.Equal(t, 4, g.EdgeCount())
}

func TestPruneLowDegree_AlreadyIsolatedNotReported(t *testing.T) {
	g := buildPath(t)
	_, err := g.EnsureVertex("lonely")
	require.NoError(t, err)

	isolated, err := weighting.PruneLowDegree(g, 2)
	require.NoError(t, err)
	assert.NotContains(t, isolated, core.VertexID("lonely"))
}

func TestPruneLowDegree_Validation(t *testing.T) {
	_, err := weighting.PruneLowDegree(nil, 1)
	assert.ErrorIs(t, err, weighting.ErrNilGraph)
	_, err = weighting.PruneLowDegree(core.NewGraph(), -1)
	assert.ErrorIs(t, err, weighting.ErrBadThreshold)
}

// ------------------------------------------------------------------------
// Random-walk probabilities
// ------------------------------------------------------------------------

// assertMassInvariants checks the per-vertex normalization contracts.
func assertMassInvariants(t *testing.T, g *core.Graph) {
	t.Helper()
	for id, v := range g.VerticesMap() {
		sum := v.PContinue + v.PInject + v.PAbandon
		assert.InDelta(t, 1.0, sum, weighting.Tolerance, "mass sum of %s", id)

		var trans float64
		for _, p := range v.Transition {
			assert.GreaterOrEqual(t, p, 0.0, "negative transition at %s", id)
			trans += p
		}
		assert.InDelta(t, v.PContinue, trans, weighting.Tolerance, "transition sum of %s", id)

		if len(v.InjectedLabels) == 0 {
			assert.Zero(t, v.PInject, "non-seed %s must have zero injection mass", id)
		}
	}
}

func TestComputeRandomWalk_Normalization(t *testing.T) {
	g := buildPath(t)
	_, err := assemble.InjectSeeds(g, []core.Seed{{Vertex: "a", Label: "L1", Score: 1.0}}, 5)
	require.NoError(t, err)

	report, err := weighting.ComputeRandomWalk(g, 2.0)
	require.NoError(t, err)
	assert.Empty(t, report.Degenerate)
	assertMassInvariants(t, g)
}

func TestComputeRandomWalk_SeedEntropyGivesInjectionMass(t *testing.T) {
	// b has two equal-weight neighbors: H = ln 2, so with β = 2 a seeded
	// b earns strictly positive injection mass.
	g := buildPath(t)
	_, err := assemble.InjectSeeds(g, []core.Seed{{Vertex: "b", Label: "L1", Score: 1.0}}, 5)
	require.NoError(t, err)

	_, err = weighting.ComputeRandomWalk(g, 2.0)
	require.NoError(t, err)

	b, _ := g.Vertex("b")
	wantCont := math.Log(2) / math.Log(2+math.Exp(math.Ln2))
	wantInj := (1 - wantCont) * math.Sqrt(math.Ln2)
	norm := math.Max(wantCont+wantInj, 1)
	assert.InDelta(t, wantCont/norm, b.PContinue, 1e-12)
	assert.InDelta(t, wantInj/norm, b.PInject, 1e-12)
	assert.Positive(t, b.PInject)

	// Equal weights split continuation mass evenly.
	assert.InDelta(t, b.PContinue/2, b.Transition["a"], 1e-12)
	assert.InDelta(t, b.PContinue/2, b.Transition["c"], 1e-12)
}

func TestComputeRandomWalk_IsolatedVertexFallback(t *testing.T) {
	g := buildPath(t)
	_, err := g.EnsureVertex("lonely")
	require.NoError(t, err)

	report, err := weighting.ComputeRandomWalk(g, 2.0)
	require.NoError(t, err)
	assert.Equal(t, []core.VertexID{"lonely"}, report.Degenerate)

	lonely, _ := g.Vertex("lonely")
	assert.Zero(t, lonely.PContinue)
	assert.Empty(t, lonely.Transition)
	assert.InDelta(t, 1.0, lonely.PAbandon, weighting.Tolerance)
}

func TestComputeRandomWalk_MonotonicInBeta(t *testing.T) {
	// Continuation mass grows with β for a fixed neighborhood.
	var prev float64
	for _, beta := range []float64{1.5, 2, 4, 8, 32} {
		g := buildPath(t)
		_, err := weighting.ComputeRandomWalk(g, beta)
		require.NoError(t, err)
		b, _ := g.Vertex("b")
		assert.Greater(t, b.PContinue, prev, "beta=%v", beta)
		prev = b.PContinue
	}
}

func TestComputeRandomWalk_RerunIsSafe(t *testing.T) {
	g := buildPath(t)
	_, err := assemble.InjectSeeds(g, []core.Seed{{Vertex: "a", Label: "L1", Score: 1.0}}, 5)
	require.NoError(t, err)

	_, err = weighting.ComputeRandomWalk(g, 2.0)
	require.NoError(t, err)
	a, _ := g.Vertex("a")
	first := a.PContinue

	// Unlike the kernel, recomputation rebuilds from scratch.
	_, err = weighting.ComputeRandomWalk(g, 2.0)
	require.NoError(t, err)
	assert.Equal(t, first, a.PContinue)
	assertMassInvariants(t, g)
}

func TestComputeRandomWalk_Validation(t *testing.T) {
	_, err := weighting.ComputeRandomWalk(nil, 2.0)
	assert.ErrorIs(t, err, weighting.ErrNilGraph)
	_, err = weighting.ComputeRandomWalk(core.NewGraph(), 0.5)
	assert.ErrorIs(t, err, weighting.ErrBadBeta)
}
