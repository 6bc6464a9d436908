// Package core: built-in Hasher strategies.
//
// This file provides the HasherFunc adapter plus ready-made strategies
// for the two most common payload shapes: strings and opaque byte
// sequences. Anything richer (structured records, case-folded keys,
// canonicalized forms) is expressed by the caller through HasherFunc.

package core

import (
	"bytes"
	"hash/fnv"
)

// HasherFunc adapts a pair of plain functions into a Hasher strategy.
// Both fields must be non-nil before the value is handed to New.
type HasherFunc[T any] struct {
	// HashFn returns a 64-bit digest of a payload.
	HashFn func(v T) uint64

	// EqualFn reports whether two payloads denote the same vertex.
	EqualFn func(a, b T) bool
}

// Hash implements Hasher.
func (h HasherFunc[T]) Hash(v T) uint64 { return h.HashFn(v) }

// Equal implements Hasher.
func (h HasherFunc[T]) Equal(a, b T) bool { return h.EqualFn(a, b) }

// StringHasher returns the standard strategy for string payloads:
// FNV-1a hashing with exact (case-sensitive) equality.
func StringHasher() Hasher[string] {
	return HasherFunc[string]{
		HashFn:  func(s string) uint64 { return fnvString(s) },
		EqualFn: func(a, b string) bool { return a == b },
	}
}

// BytesHasher returns the standard strategy for opaque []byte payloads:
// FNV-1a hashing with byte-wise equality.
func BytesHasher() Hasher[[]byte] {
	return HasherFunc[[]byte]{
		HashFn: func(b []byte) uint64 {
			h := fnv.New64a()
			_, _ = h.Write(b) // hash.Hash.Write never errors
			return h.Sum64()
		},
		EqualFn: bytes.Equal,
	}
}

// fnvString computes the FNV-1a digest of s without forcing callers
// through the hash.Hash interface.
func fnvString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))

	return h.Sum64()
}
