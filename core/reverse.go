package core

// Reverse returns a new Graph with every edge direction flipped:
// for each source edge (from, to, weight) the result holds an edge
// (to, from, weight), appended in original edge order. The vertex set
// and VertexIDs are preserved 1:1 and payload values are shared; the
// adjacency index is rebuilt from scratch, so the receiver and the
// result hold no mutable state in common.
//
// Reversing twice yields a graph with the same vertex set and the same
// multiset of (From, To, Weight) edges as the original.
// Complexity: O(V + E).
func (g *Graph[T]) Reverse() *Graph[T] {
	rev := g.cloneShell(len(g.edges))
	for _, e := range g.edges {
		eid := EdgeID(len(rev.edges))
		rev.edges = append(rev.edges, Edge{From: e.To, To: e.From, Weight: e.Weight})
		rev.adjacency[e.To] = append(rev.adjacency[e.To], eid)
	}

	return rev
}
