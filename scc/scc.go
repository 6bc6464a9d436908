package scc

import "github.com/Minamisava/digraph/core"

// frame is one suspended vertex exploration: the vertex, its outgoing
// edges (snapshotted once), and the next edge to examine.
type frame struct {
	id   core.VertexID
	out  []core.Edge
	next int
}

// Components partitions the vertices of g into strongly connected
// components: disjoint, non-empty groups of mutually reachable
// vertices. Every vertex appears in exactly one group; an acyclic
// graph yields one singleton group per vertex. A nil or empty graph
// yields nil.
//
// Determinism: roots are explored in VertexID (insertion) order, each
// group lists its vertices in discovery order, and groups are emitted
// in completion order.
// Complexity: O(V + E) time, O(V) memory.
func Components[T any](g *core.Graph[T]) [][]core.VertexID {
	if g == nil {
		return nil
	}

	// 1) Per-vertex bookkeeping: discovery index (-1 = undiscovered),
	//    low-link, and the on-stack marker for Tarjan's component stack.
	n := g.VertexCount()
	index := make([]int, n)
	for i := range index {
		index[i] = -1
	}
	lowlink := make([]int, n)
	onStack := make([]bool, n)

	tstack := make([]core.VertexID, 0, n) // Tarjan's component stack
	frames := make([]frame, 0, n)         // explicit DFS work stack
	nextIndex := 0
	var comps [][]core.VertexID

	// discover assigns v its discovery index and low-link, pushes it on
	// the component stack, and suspends its exploration as a new frame.
	discover := func(v core.VertexID) {
		index[v] = nextIndex
		lowlink[v] = nextIndex
		nextIndex++
		onStack[v] = true
		tstack = append(tstack, v)
		frames = append(frames, frame{id: v, out: g.OutEdges(v)})
	}

	// 2) Scan roots in VertexID order so the decomposition is
	//    deterministic for a fixed insertion order.
	for root := 0; root < n; root++ {
		if index[root] != -1 {
			continue
		}
		discover(core.VertexID(root))

		for len(frames) > 0 {
			f := &frames[len(frames)-1]

			// 2a) Examine the next outgoing edge, if any.
			if f.next < len(f.out) {
				w := f.out[f.next].To
				f.next++
				if index[w] == -1 {
					discover(w) // tree edge: descend
				} else if onStack[w] && index[w] < lowlink[f.id] {
					lowlink[f.id] = index[w] // back/cross edge into the stack
				}
				continue
			}

			// 2b) Frame exhausted: pop it and propagate the low-link to
			//     the parent frame.
			v := f.id
			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				if p := &frames[len(frames)-1]; lowlink[v] < lowlink[p.id] {
					lowlink[p.id] = lowlink[v]
				}
			}

			// 2c) Root of a component: pop the component stack down to v.
			//     The stack holds the members in discovery order, so the
			//     popped run is reversed before it is recorded.
			if lowlink[v] == index[v] {
				var comp []core.VertexID
				for {
					w := tstack[len(tstack)-1]
					tstack = tstack[:len(tstack)-1]
					onStack[w] = false
					comp = append(comp, w)
					if w == v {
						break
					}
				}
				for i, j := 0, len(comp)-1; i < j; i, j = i+1, j-1 {
					comp[i], comp[j] = comp[j], comp[i]
				}
				comps = append(comps, comp)
			}
		}
	}

	return comps
}
