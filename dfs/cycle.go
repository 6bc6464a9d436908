// Package dfs: directed cycle detection.
//
// DetectCycles explores every vertex not yet fully processed with
// three-color marking: White (unvisited), Gray (on the current
// exploration path), Black (done). An edge into a Gray vertex is a
// back-edge; the cycle it closes is the current path suffix starting at
// that vertex. Each distinct back-edge yields exactly one reported
// cycle — cycles reachable through several back-edges (parallel edges
// included) are reported once per back-edge, with no further
// deduplication. Black vertices are never re-explored, so the whole
// call is linear in vertices plus edges (plus the length of the
// reported paths).
//
// The search runs on an explicit frame stack rather than language
// recursion: cycle depth is bounded by available memory, not by the
// call stack.

package dfs

import "github.com/Minamisava/digraph/core"

// cycleFrame is one suspended vertex exploration: the vertex, its
// outgoing edges (snapshotted once), and the next edge to examine.
type cycleFrame struct {
	id   core.VertexID
	out  []core.Edge
	next int
}

// DetectCycles inspects g for directed cycles.
// Returns (false, nil) for an acyclic or nil graph; otherwise
// (true, cycles) where each cycle is the ordered vertex path from the
// re-encountered vertex through the vertex that closed the back-edge.
// Output is deterministic for a fixed graph and insertion order: roots
// are explored in VertexID order and edges in adjacency order.
// Complexity: O(V + E + C·L) time, O(V) memory.
func DetectCycles[T any](g *core.Graph[T]) (bool, [][]core.VertexID) {
	// 1) Nil graph is treated as cycle-free.
	if g == nil {
		return false, nil
	}

	// 2) Prepare bookkeeping: per-vertex color, the current exploration
	//    path with each Gray vertex's position in it, and the frame stack.
	n := g.VertexCount()
	state := make([]int, n)
	pathPos := make([]int, n)
	for i := range pathPos {
		pathPos[i] = -1
	}
	path := make([]core.VertexID, 0, n)
	stack := make([]cycleFrame, 0, n)
	var cycles [][]core.VertexID

	// discover marks id Gray, records it on the path, and suspends its
	// exploration as a new frame.
	discover := func(id core.VertexID) {
		state[id] = Gray
		pathPos[id] = len(path)
		path = append(path, id)
		stack = append(stack, cycleFrame{id: id, out: g.OutEdges(id)})
	}

	// 3) Launch DFS from every vertex not yet fully processed,
	//    in VertexID (insertion) order.
	for root := 0; root < n; root++ {
		if state[root] != White {
			continue
		}
		discover(core.VertexID(root))

		for len(stack) > 0 {
			f := &stack[len(stack)-1]

			// 3a) Frame exhausted: backtrack.
			if f.next == len(f.out) {
				state[f.id] = Black
				pathPos[f.id] = -1
				path = path[:len(path)-1]
				stack = stack[:len(stack)-1]
				continue
			}

			target := f.out[f.next].To
			f.next++

			switch state[target] {
			case White:
				// 3b) Unexplored: descend.
				discover(target)
			case Gray:
				// 3c) Back-edge: reconstruct the cycle from the path
				//     suffix starting at the re-encountered vertex.
				cycle := append([]core.VertexID(nil), path[pathPos[target]:]...)
				cycles = append(cycles, cycle)
			}
			// Black targets are fully explored; nothing to do.
		}
	}

	// 4) Absent result when no back-edge was ever found.
	if len(cycles) == 0 {
		return false, nil
	}

	return true, cycles
}
