package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Minamisava/digraph/core"
)

// TestStringHasher verifies hash consistency and exact equality.
func TestStringHasher(t *testing.T) {
	h := core.StringHasher()

	assert.Equal(t, h.Hash("graph"), h.Hash("graph"))
	assert.True(t, h.Equal("graph", "graph"))
	assert.False(t, h.Equal("graph", "Graph")) // case-sensitive
}

// TestBytesHasher verifies byte sequences work as payloads without any
// native comparability: equal contents collapse to one vertex.
func TestBytesHasher(t *testing.T) {
	g := core.New(core.BytesHasher())

	a := g.AddVertex([]byte{0x01, 0x02})
	b := g.AddVertex([]byte{0x01, 0x02}) // distinct backing array, equal bytes
	c := g.AddVertex([]byte{0x01, 0x03})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, 2, g.VertexCount())
}

// TestHasherFunc_StructuredRecord verifies the adapter supports
// structured payloads keyed on a subset of their fields.
func TestHasherFunc_StructuredRecord(t *testing.T) {
	type host struct {
		Name string
		Hits int // not part of identity
	}
	byName := core.HasherFunc[host]{
		HashFn:  func(h host) uint64 { return core.StringHasher().Hash(h.Name) },
		EqualFn: func(a, b host) bool { return a.Name == b.Name },
	}
	g := core.New[host](byName)

	first := g.AddVertex(host{Name: "db", Hits: 1})
	second := g.AddVertex(host{Name: "db", Hits: 2}) // same identity

	assert.Equal(t, first, second)
	assert.Equal(t, 1, g.VertexCount())

	// The first-inserted record is the stored one.
	data, ok := g.Lookup(first)
	assert.True(t, ok)
	assert.Equal(t, 1, data.Hits)
}

// TestHasher_CollidingHashes verifies equality resolves hash collisions:
// a strategy mapping every payload to one bucket still dedups correctly.
func TestHasher_CollidingHashes(t *testing.T) {
	degenerate := core.HasherFunc[string]{
		HashFn:  func(string) uint64 { return 0 },
		EqualFn: func(a, b string) bool { return a == b },
	}
	g := core.New[string](degenerate)

	a := g.AddVertex("A")
	b := g.AddVertex("B")
	again := g.AddVertex("A")

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, again)
	assert.Equal(t, 2, g.VertexCount())
}
