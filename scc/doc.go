// Package scc computes strongly connected components of a core.Graph
// using an iterative, single-pass Tarjan decomposition.
//
// Components partitions every vertex into exactly one maximal group of
// mutually reachable vertices. Each vertex receives a discovery index
// and a low-link value — the smallest discovery index reachable through
// tree edges plus at most one back/cross edge into the current
// exploration stack; a vertex whose low-link equals its own index
// closes a component. The search runs on an explicit frame stack, never
// language recursion, so component depth is bounded only by memory.
//
// Output is deterministic for a fixed graph and insertion order:
// roots are scanned in VertexID order, vertices inside a component
// appear in discovery order, and components appear in completion order
// (so in a DAG, sinks complete before their callers).
//
// Complexity: O(V + E) time, O(V) memory.
package scc
