// Package core: Graph method implementations.
//
// This file provides the building and query operations on the Graph
// type declared in types.go. Vertex identity is resolved through the
// Hasher strategy: the hash selects a bucket of candidate VertexIDs and
// Equal picks the match, so payload types never need to be comparable.
// Edges are append-only; the adjacency index records outgoing EdgeIDs
// per source vertex in insertion order.

package core

// AddVertex inserts data as a vertex and returns its VertexID.
// If an equal payload (under the Hasher strategy) was already added,
// the existing id is returned and no duplicate is created (idempotent).
// Complexity: O(1) amortized, expected.
func (g *Graph[T]) AddVertex(data T) VertexID {
	h := g.hasher.Hash(data)

	// Dedup lookup: scan the hash bucket for an equal payload.
	for _, id := range g.buckets[h] {
		if g.hasher.Equal(g.data[id], data) {
			return id // existing vertex, no-op
		}
	}

	// Allocate the next sequential id and store both directions.
	id := VertexID(len(g.data))
	g.data = append(g.data, data)
	g.adjacency = append(g.adjacency, nil)
	g.buckets[h] = append(g.buckets[h], id)

	return id
}

// VertexIDOf resolves data to its VertexID via the Hasher strategy.
// The second result is false if no equal payload was ever added.
// Complexity: O(1) expected.
func (g *Graph[T]) VertexIDOf(data T) (VertexID, bool) {
	for _, id := range g.buckets[g.hasher.Hash(data)] {
		if g.hasher.Equal(g.data[id], data) {
			return id, true
		}
	}

	return 0, false
}

// HasVertex reports whether a payload equal to data has been added.
// Complexity: O(1) expected.
func (g *Graph[T]) HasVertex(data T) bool {
	_, ok := g.VertexIDOf(data)

	return ok
}

// Lookup returns the payload stored under id.
// The second result is false if id is not a valid id for this graph;
// an invalid id is an expected outcome, not an error.
// Complexity: O(1).
func (g *Graph[T]) Lookup(id VertexID) (T, bool) {
	if !g.validID(id) {
		var zero T
		return zero, false
	}

	return g.data[id], true
}

// AddEdge appends a directed edge from→to with the given weight and
// returns its EdgeID. Both endpoints are resolved through the same
// strategy lookup AddVertex uses; if either payload was never added,
// AddEdge fails with ErrVertexNotFound and the graph is unchanged.
// Parallel edges are permitted and never deduplicated.
// Complexity: O(1) amortized, expected.
func (g *Graph[T]) AddEdge(from, to T, weight int64) (EdgeID, error) {
	fromID, ok := g.VertexIDOf(from)
	if !ok {
		return 0, ErrVertexNotFound
	}
	toID, ok := g.VertexIDOf(to)
	if !ok {
		return 0, ErrVertexNotFound
	}

	eid := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge{From: fromID, To: toID, Weight: weight})
	g.adjacency[fromID] = append(g.adjacency[fromID], eid)

	return eid, nil
}

// HasEdge reports whether at least one edge from→to exists, regardless
// of weight. Unregistered endpoints yield false, never an error.
// Complexity: O(deg(from)) expected.
func (g *Graph[T]) HasEdge(from, to T) bool {
	fromID, ok := g.VertexIDOf(from)
	if !ok {
		return false
	}
	toID, ok := g.VertexIDOf(to)
	if !ok {
		return false
	}
	for _, eid := range g.adjacency[fromID] {
		if g.edges[eid].To == toID {
			return true
		}
	}

	return false
}

// OutEdges returns the outgoing edges of id in insertion order.
// The result is a fresh slice safe to retain; it is empty (never an
// error) when the vertex has no outgoing edges or id is invalid.
// Complexity: O(deg(id)).
func (g *Graph[T]) OutEdges(id VertexID) []Edge {
	if !g.validID(id) {
		return nil
	}
	eids := g.adjacency[id]
	out := make([]Edge, len(eids))
	for i, eid := range eids {
		out[i] = g.edges[eid]
	}

	return out
}

// OutDegree returns the number of outgoing edges of id, or 0 for an
// invalid id. Complexity: O(1).
func (g *Graph[T]) OutDegree(id VertexID) int {
	if !g.validID(id) {
		return 0
	}

	return len(g.adjacency[id])
}

// Edges returns a copy of the full edge sequence in insertion order
// (the slice index of each element is its EdgeID).
// Complexity: O(E).
func (g *Graph[T]) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// VertexCount returns the number of distinct vertices. O(1).
func (g *Graph[T]) VertexCount() int {
	return len(g.data)
}

// EdgeCount returns the number of edges. O(1).
func (g *Graph[T]) EdgeCount() int {
	return len(g.edges)
}

// Clear resets the graph to its empty state, releasing all vertex and
// edge storage while keeping the Hasher strategy. Any live iterators
// over the graph are invalidated.
func (g *Graph[T]) Clear() {
	g.buckets = make(map[uint64][]VertexID)
	g.data = nil
	g.edges = nil
	g.adjacency = nil
}

// validID reports whether id addresses a vertex of this graph.
func (g *Graph[T]) validID(id VertexID) bool {
	return id >= 0 && int(id) < len(g.data)
}
