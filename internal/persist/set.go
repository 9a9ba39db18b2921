// Package persist encodes small sets to opaque blobs and binds them to
// durable key-value slots. Decoding never fails: absent or corrupt data is
// treated as if nothing had ever been saved.
package persist

import (
	"encoding/json"
	"maps"
	"slices"
)

// Element is the constraint for values a persisted set may hold.
type Element interface {
	~int | ~string
}

// Set is an unordered collection of distinct values.
type Set[T Element] map[T]struct{}

// NewSet builds a set from values, dropping duplicates.
func NewSet[T Element](values ...T) Set[T] {
	s := make(Set[T], len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Contains reports membership.
func (s Set[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

// Add inserts v and reports whether it was absent.
func (s Set[T]) Add(v T) bool {
	if s.Contains(v) {
		return false
	}
	s[v] = struct{}{}
	return true
}

// Remove deletes v and reports whether it was present.
func (s Set[T]) Remove(v T) bool {
	if !s.Contains(v) {
		return false
	}
	delete(s, v)
	return true
}

// Len returns the number of members.
func (s Set[T]) Len() int { return len(s) }

// Sorted returns the members in ascending order.
func (s Set[T]) Sorted() []T {
	return slices.Sorted(maps.Keys(s))
}

// Filter returns a new set holding the members for which keep is true.
func (s Set[T]) Filter(keep func(T) bool) Set[T] {
	out := make(Set[T], len(s))
	for v := range s {
		if keep(v) {
			out[v] = struct{}{}
		}
	}
	return out
}

// Equal reports whether both sets hold the same members.
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s) != len(other) {
		return false
	}
	for v := range s {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

// Encode serializes the set as a JSON array. Members are sorted so equal sets
// always produce identical blobs.
func Encode[T Element](s Set[T]) ([]byte, error) {
	values := s.Sorted()
	if values == nil {
		values = []T{}
	}
	return json.Marshal(values)
}

// Decode parses a blob written by Encode. Empty, absent and malformed input
// all yield the empty set.
func Decode[T Element](blob []byte) Set[T] {
	if len(blob) == 0 {
		return Set[T]{}
	}
	var values []T
	if err := json.Unmarshal(blob, &values); err != nil {
		return Set[T]{}
	}
	return NewSet(values...)
}
