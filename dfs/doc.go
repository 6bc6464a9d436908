// Package dfs provides depth-first traversal and cycle detection over
// core.Graph.
//
// Traversal is exposed as a lazy, single-pass Iterator rather than a
// materialized slice, so callers can stop early without paying for the
// whole walk; Order is the collecting convenience on top of it. Both
// are deterministic: vertices are yielded in adjacency (edge-insertion)
// order, which the iterator achieves by pushing each vertex's outgoing
// targets onto its LIFO stack in reverse adjacency order.
//
// DetectCycles enumerates directed cycles with three-color marking
// (White/Gray/Black) and back-edge detection, reporting one cycle path
// per distinct back-edge. Both the traversal and the detector run on
// explicit work stacks, never language recursion, so graph depth is
// bounded only by available memory.
//
// Complexity:
//
//   - Iterator / Order: O(V + E) time over a full walk, O(V) memory.
//   - DetectCycles:     O(V + E + C·L) time (C cycles of avg length L),
//     O(V) memory for state, path, and frame stacks.
//
// Errors:
//
//   - ErrGraphNil            — a nil *core.Graph was supplied.
//   - ErrStartVertexNotFound — the start payload was never added.
//
// An Iterator borrows its parent graph: it must not outlive it, and the
// graph must not be mutated (AddVertex/AddEdge/Clear) while the
// iterator is live, since mutation invalidates the adjacency snapshot
// the iterator walks. Independent iterators over one graph do not
// interfere with each other.
package dfs
