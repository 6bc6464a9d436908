package core

// cloneShell copies the vertex store (strategy, hash buckets, payload
// slice) into a fresh Graph with empty edge storage sized for edgeCap
// edges. VertexIDs carry over 1:1; payload values are shared, not
// duplicated. Used by Clone and Reverse.
// Complexity: O(V).
func (g *Graph[T]) cloneShell(edgeCap int) *Graph[T] {
	clone := &Graph[T]{
		hasher:    g.hasher,
		buckets:   make(map[uint64][]VertexID, len(g.buckets)),
		data:      append([]T(nil), g.data...),
		edges:     make([]Edge, 0, edgeCap),
		adjacency: make([][]EdgeID, len(g.adjacency)),
	}
	for h, ids := range g.buckets {
		clone.buckets[h] = append([]VertexID(nil), ids...)
	}

	return clone
}

// Clone returns a deep structural copy of the Graph: vertex store,
// edge sequence, and adjacency index. The two graphs share the Hasher
// strategy and payload values but no mutable state.
// Complexity: O(V + E).
func (g *Graph[T]) Clone() *Graph[T] {
	clone := g.cloneShell(len(g.edges))
	clone.edges = append(clone.edges, g.edges...)
	for v, out := range g.adjacency {
		if len(out) > 0 {
			clone.adjacency[v] = append([]EdgeID(nil), out...)
		}
	}

	return clone
}
