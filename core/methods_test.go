package core_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Minamisava/digraph/core"
)

// TestAddVertex_Idempotent verifies that inserting an equal payload
// twice returns the same VertexID and creates no duplicate.
func TestAddVertex_Idempotent(t *testing.T) {
	g := core.New(core.StringHasher())

	first := g.AddVertex("A")
	second := g.AddVertex("A")

	assert.Equal(t, first, second)      // same id both times
	assert.Equal(t, 1, g.VertexCount()) // one logical vertex
}

// TestAddVertex_DenseInsertionOrder verifies ids are assigned densely
// in first-insertion order, regardless of duplicate calls in between.
func TestAddVertex_DenseInsertionOrder(t *testing.T) {
	g := core.New(core.StringHasher())

	a := g.AddVertex("A")
	b := g.AddVertex("B")
	_ = g.AddVertex("A") // duplicate, must not consume an id
	c := g.AddVertex("C")

	assert.Equal(t, core.VertexID(0), a)
	assert.Equal(t, core.VertexID(1), b)
	assert.Equal(t, core.VertexID(2), c)
	assert.Equal(t, 3, g.VertexCount())
}

// TestAddVertex_CustomStrategy verifies that vertex dedup follows the
// caller-supplied equality, not the payload's native one: with a
// case-insensitive strategy, "Go" and "GO" collapse to one vertex.
func TestAddVertex_CustomStrategy(t *testing.T) {
	folded := core.HasherFunc[string]{
		HashFn:  func(s string) uint64 { return core.StringHasher().Hash(strings.ToLower(s)) },
		EqualFn: strings.EqualFold,
	}
	g := core.New[string](folded)

	lower := g.AddVertex("go")
	upper := g.AddVertex("GO")

	assert.Equal(t, lower, upper)
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex("gO"))

	// The first-inserted spelling is the one stored.
	data, ok := g.Lookup(lower)
	require.True(t, ok)
	assert.Equal(t, "go", data)
}

// TestLookup verifies payload retrieval and the absent result for
// invalid ids.
func TestLookup(t *testing.T) {
	g := core.New(core.StringHasher())
	id := g.AddVertex("A")

	data, ok := g.Lookup(id)
	assert.True(t, ok)
	assert.Equal(t, "A", data)

	// Out-of-range ids are an expected absent outcome, not an error.
	_, ok = g.Lookup(core.VertexID(99))
	assert.False(t, ok)
	_, ok = g.Lookup(core.VertexID(-1))
	assert.False(t, ok)
}

// TestAddEdge_UnknownVertex verifies AddEdge fails with
// ErrVertexNotFound when either endpoint was never added, and that the
// failed call leaves the graph unchanged.
func TestAddEdge_UnknownVertex(t *testing.T) {
	g := core.New(core.StringHasher())
	g.AddVertex("A")

	_, err := g.AddEdge("A", "missing", 1)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = g.AddEdge("missing", "A", 1)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	assert.Equal(t, 0, g.EdgeCount())
}

// TestAddEdge_AdjacencyInsertionOrder verifies OutEdges returns edges
// in insertion order with their weights intact.
func TestAddEdge_AdjacencyInsertionOrder(t *testing.T) {
	g := core.New(core.StringHasher())
	a := g.AddVertex("A")
	b := g.AddVertex("B")
	c := g.AddVertex("C")

	_, err := g.AddEdge("A", "B", 5)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "C", 2)
	require.NoError(t, err)

	out := g.OutEdges(a)
	assert.Equal(t, []core.Edge{
		{From: a, To: b, Weight: 5},
		{From: a, To: c, Weight: 2},
	}, out)
}

// TestAddEdge_ParallelEdges verifies parallel edges between the same
// ordered pair are kept, never deduplicated.
func TestAddEdge_ParallelEdges(t *testing.T) {
	g := core.New(core.StringHasher())
	a := g.AddVertex("A")
	g.AddVertex("B")

	e1, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	e2, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)

	assert.NotEqual(t, e1, e2)
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 2, g.OutDegree(a))
}

// TestHasEdge verifies existence checks are direction-sensitive and
// weight-agnostic, and report false (not an error) for unknown payloads.
func TestHasEdge(t *testing.T) {
	g := core.New(core.StringHasher())
	g.AddVertex("A")
	g.AddVertex("B")
	_, err := g.AddEdge("A", "B", 7)
	require.NoError(t, err)

	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"))    // directed
	assert.False(t, g.HasEdge("A", "nope")) // unknown endpoint
	assert.False(t, g.HasEdge("nope", "B"))
}

// TestOutEdges_EmptyCases verifies sinks and invalid ids yield an empty
// sequence rather than an error.
func TestOutEdges_EmptyCases(t *testing.T) {
	g := core.New(core.StringHasher())
	sink := g.AddVertex("sink")

	assert.Empty(t, g.OutEdges(sink))
	assert.Empty(t, g.OutEdges(core.VertexID(42)))
	assert.Zero(t, g.OutDegree(core.VertexID(42)))
}

// TestEdges verifies the full edge sequence is returned in insertion
// order and is a copy detached from internal storage.
func TestEdges(t *testing.T) {
	g := core.New(core.StringHasher())
	a := g.AddVertex("A")
	b := g.AddVertex("B")
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "A", 2)

	edges := g.Edges()
	require.Equal(t, []core.Edge{
		{From: a, To: b, Weight: 1},
		{From: b, To: a, Weight: 2},
	}, edges)

	// Mutating the returned slice must not touch the graph.
	edges[0].Weight = 99
	assert.Equal(t, int64(1), g.Edges()[0].Weight)
}

// TestClear verifies Clear resets storage but keeps the strategy usable
// for further insertions.
func TestClear(t *testing.T) {
	g := core.New(core.StringHasher())
	g.AddVertex("A")
	g.AddVertex("B")
	_, _ = g.AddEdge("A", "B", 0)

	g.Clear()
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.HasVertex("A"))

	// Ids restart from zero after a reset.
	assert.Equal(t, core.VertexID(0), g.AddVertex("Z"))
}

// TestNew_NilHasherPanics verifies construction without a strategy is
// rejected loudly.
func TestNew_NilHasherPanics(t *testing.T) {
	assert.Panics(t, func() { core.New[string](nil) })
}

// TestCountVertices_DistinctUnderStrategy verifies VertexCount equals
// the number of distinct values under the strategy for any insertion
// sequence with duplicates.
func TestCountVertices_DistinctUnderStrategy(t *testing.T) {
	g := core.New(core.StringHasher())
	for _, s := range []string{"a", "b", "a", "c", "b", "a"} {
		g.AddVertex(s)
	}
	assert.Equal(t, 3, g.VertexCount())
}
