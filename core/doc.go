// Package core provides a generic, single-owner, in-memory directed
// Graph with deduplicated vertex storage and dense integer identifiers.
//
// The Graph G = (V,E) is parameterized over an arbitrary payload type T
// and a caller-supplied Hasher[T] strategy:
//
//   - Payload dedup — AddVertex collapses equal payloads (under the
//     strategy) to one vertex; insertion is idempotent.
//   - Dense surrogate keys — vertices and edges are addressed by
//     VertexID/EdgeID integers assigned in insertion order, never
//     reused, stable for the graph's lifetime. The id indirection keeps
//     the storage acyclic even when the logical graph is not.
//   - Append-only edges — directed Edge{From,To,Weight} records with
//     parallel edges permitted; the adjacency index lists each vertex's
//     outgoing EdgeIDs in insertion order.
//   - Pluggable equality — T is never assumed comparable or hashable;
//     all identity decisions go through the Hasher strategy, so T can
//     be opaque byte sequences or structured records alike.
//
// Core methods:
//
//	// Building
//	AddVertex(data T) VertexID                            // O(1) amortized
//	AddEdge(from, to T, weight int64) (EdgeID, error)     // O(1) amortized
//
//	// Query
//	Lookup(id VertexID) (T, bool)        // O(1)
//	VertexIDOf(data T) (VertexID, bool)  // O(1) expected
//	HasVertex(data T) bool               // O(1) expected
//	HasEdge(from, to T) bool             // O(deg(from))
//	OutEdges(id VertexID) []Edge         // O(deg(id)), insertion order
//	OutDegree(id VertexID) int           // O(1)
//	Edges() []Edge                       // O(E), insertion order
//	VertexCount() int                    // O(1)
//	EdgeCount() int                      // O(1)
//
//	// Transform & maintenance
//	Reverse() *Graph[T]  // O(V+E): flipped copy, same VertexIDs
//	Clone() *Graph[T]    // O(V+E): deep structural copy
//	Clear()              // O(1): reset storage, keep the strategy
//
// Errors:
//
//	ErrVertexNotFound – AddEdge referenced a payload never added
//
// Lookups and existence checks never fail: "not found" is an expected
// outcome there and is reported as a false/absent result instead.
//
// Concurrency contract: a Graph performs no internal locking. It is
// single-owner and single-threaded; mutation must not be interleaved
// with live dfs iterators or in-progress algorithms, which hold
// references into the adjacency index.
package core
