// Package core defines the central Graph container, its dense VertexID
// and EdgeID identifier spaces, and the Hasher strategy interface that
// drives payload deduplication.
//
// This file declares VertexID, EdgeID, Edge, Hasher, Graph, Option,
// sentinel errors, and the New constructor.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a payload that
	// was never registered with AddVertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// VertexID is a dense integer surrogate key identifying a vertex within
// one Graph instance. IDs are assigned monotonically in first-insertion
// order, are never reused, and remain stable for the graph's lifetime.
type VertexID int

// EdgeID is a dense integer surrogate key indexing into a Graph's
// append-only edge sequence, assigned in edge insertion order.
type EdgeID int

// Edge represents one directed connection From→To.
//
// Weight is an opaque signed cost; storing the same weight on every
// edge models an unweighted graph — there is no special unweighted
// mode. Parallel edges between the same ordered pair are permitted,
// and edges are immutable once appended.
type Edge struct {
	// From is the source vertex.
	From VertexID

	// To is the destination vertex.
	To VertexID

	// Weight is the cost or capacity of the edge.
	Weight int64
}

// Hasher is the pluggable equality/hash strategy over the payload type T.
//
// The Graph never assumes T is comparable or hashable on its own; every
// identity decision is delegated here. Implementations must be
// consistent: Equal(a, b) implies Hash(a) == Hash(b). Unequal payloads
// may share a hash; the Graph resolves such collisions via Equal.
type Hasher[T any] interface {
	// Hash returns a 64-bit digest of v.
	Hash(v T) uint64

	// Equal reports whether a and b denote the same logical vertex.
	Equal(a, b T) bool
}

// Option configures storage behavior of a Graph before creation.
type Option func(*config)

// config collects construction-time capacity hints.
type config struct {
	vertexCap int
	edgeCap   int
}

// WithVertexCapacity pre-sizes vertex storage for n vertices, avoiding
// reallocation while a graph of known magnitude is assembled.
func WithVertexCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.vertexCap = n
		}
	}
}

// WithEdgeCapacity pre-sizes the edge sequence for n edges.
func WithEdgeCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.edgeCap = n
		}
	}
}

// Graph is the core in-memory directed graph.
//
// It stores each distinct payload (under the Hasher strategy) exactly
// once, addresses vertices through dense VertexIDs, and keeps an
// append-only edge sequence with a per-vertex adjacency index in
// insertion order.
//
// A Graph is single-owner and single-threaded: no internal locking is
// performed, and mutation must not be interleaved with live iterators
// or in-progress algorithms.
type Graph[T any] struct {
	hasher Hasher[T]

	// buckets maps a payload hash to the VertexIDs sharing that hash;
	// equality inside a bucket is resolved by hasher.Equal.
	buckets map[uint64][]VertexID

	// data maps VertexID (slice index) back to the stored payload.
	data []T

	// edges is the append-only edge sequence, indexed by EdgeID.
	edges []Edge

	// adjacency maps VertexID (slice index) to its outgoing EdgeIDs in
	// insertion order.
	adjacency [][]EdgeID
}

// New creates an empty Graph using the supplied equality/hash strategy
// and optional capacity hints. Panics if hasher is nil, since no
// operation can proceed without a strategy.
// Complexity: O(1).
func New[T any](hasher Hasher[T], opts ...Option) *Graph[T] {
	if hasher == nil {
		panic("core: New requires a non-nil Hasher")
	}

	// Apply options
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[T]{
		hasher:    hasher,
		buckets:   make(map[uint64][]VertexID, cfg.vertexCap),
		data:      make([]T, 0, cfg.vertexCap),
		edges:     make([]Edge, 0, cfg.edgeCap),
		adjacency: make([][]EdgeID, 0, cfg.vertexCap),
	}
}
