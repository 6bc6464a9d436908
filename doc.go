// Package digraph is an in-memory directed-graph toolkit built around a
// generic, deduplicating vertex store and a small algorithm suite.
//
// What digraph provides:
//
//	• Generic payloads: Graph[T] accepts any vertex type, with equality
//	  and hashing delegated to a caller-supplied core.Hasher[T] strategy,
//	  so two insertions of "equal" data collapse to one vertex.
//	• Dense identifiers: vertices and edges are addressed by integer
//	  surrogate keys (core.VertexID, core.EdgeID) assigned in insertion
//	  order, keeping the storage itself acyclic no matter how cyclic the
//	  logical graph becomes.
//	• Traversal: a lazy, single-pass depth-first iterator (dfs.Iterator)
//	  plus a materializing convenience (dfs.Order).
//	• Cycle detection: dfs.DetectCycles enumerates one cycle path per
//	  back-edge using explicit-stack three-color search.
//	• Strongly connected components: scc.Components runs an iterative
//	  Tarjan decomposition in linear time.
//	• Reversal: core.Graph.Reverse builds a structurally flipped copy
//	  with identical vertex identifiers.
//
// Everything is organized under three subpackages:
//
//	core/ — Graph, VertexID, EdgeID, Edge, Hasher strategies, Reverse
//	dfs/  — depth-first iterator and cycle detection
//	scc/  — strongly-connected-component decomposition
//
// Graphs are single-owner and single-threaded: assemble with AddVertex
// and AddEdge, then query and traverse. No synchronization is performed
// internally; see core's package documentation for the full contract.
//
//	go get github.com/Minamisava/digraph
package digraph
