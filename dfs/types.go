// Package dfs: shared state constants and sentinel errors for the
// traversal iterator and cycle detection.
package dfs

import "errors"

// Visitation states used by DetectCycles.
const (
	White = iota // White: the vertex has not been discovered yet.
	Gray         // Gray: the vertex is on the current exploration path.
	Black        // Black: the vertex and all its descendants are fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to New
	// or Order.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the requested start payload
	// was never added to the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)
