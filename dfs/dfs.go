// Package dfs: the depth-first Iterator and the Order convenience.
//
// The iterator is an explicit-stack walk: pop a vertex, skip it if
// already visited, otherwise mark it, push its unvisited outgoing
// targets, and yield. Targets are pushed in reverse adjacency order so
// that the LIFO pop yields children in the order their edges were
// inserted — the rule every literal traversal expectation in the test
// suite is pinned to.

package dfs

import "github.com/Minamisava/digraph/core"

// Iterator is a lazy, single-pass depth-first cursor over one graph,
// yielding each vertex reachable from its start exactly once.
//
// An Iterator is independently allocated: several may walk the same
// graph simultaneously without interfering. It borrows the parent
// graph, which must not be mutated while the iterator is live.
type Iterator[T any] struct {
	graph   *core.Graph[T]
	visited []bool
	stack   []core.VertexID
}

// New allocates an Iterator rooted at the vertex holding start.
// Returns ErrGraphNil for a nil graph and ErrStartVertexNotFound if
// start was never added.
// Complexity: O(V) for the visited set.
func New[T any](g *core.Graph[T], start T) (*Iterator[T], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	it := &Iterator[T]{graph: g}
	if err := it.Reset(start); err != nil {
		return nil, err
	}

	return it, nil
}

// Reset re-arms the iterator at a new start vertex, clearing its
// visited set and stack. Returns ErrStartVertexNotFound if start was
// never added; the iterator state is left unchanged in that case.
func (it *Iterator[T]) Reset(start T) error {
	id, ok := it.graph.VertexIDOf(start)
	if !ok {
		return ErrStartVertexNotFound
	}
	it.visited = make([]bool, it.graph.VertexCount())
	it.stack = append(it.stack[:0], id)

	return nil
}

// Next yields the next vertex in depth-first order. The second result
// is false once every vertex reachable from the start has been yielded.
// Complexity: O(V + E) amortized across a full traversal.
func (it *Iterator[T]) Next() (core.VertexID, bool) {
	for len(it.stack) > 0 {
		// Pop the top of the stack.
		id := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]

		// A vertex can sit on the stack more than once; only the first
		// pop counts.
		if it.visited[id] {
			continue
		}
		it.visited[id] = true

		// Push unvisited targets in reverse adjacency order so pops see
		// them in edge-insertion order.
		out := it.graph.OutEdges(id)
		for i := len(out) - 1; i >= 0; i-- {
			if !it.visited[out[i].To] {
				it.stack = append(it.stack, out[i].To)
			}
		}

		return id, true
	}

	return 0, false
}

// Order materializes a full depth-first traversal from start, returning
// the visited VertexIDs in yield order. Same error conditions as New.
// Complexity: O(V + E).
func Order[T any](g *core.Graph[T], start T) ([]core.VertexID, error) {
	it, err := New(g, start)
	if err != nil {
		return nil, err
	}

	order := make([]core.VertexID, 0, g.VertexCount())
	for id, ok := it.Next(); ok; id, ok = it.Next() {
		order = append(order, id)
	}

	return order, nil
}
