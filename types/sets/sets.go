// Package sets provides a generic Set for ordered comparable types. Elements
// are returned in ascending order so output is deterministic.
package sets

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
)

// OrderedComparable represents types that are both ordered and comparable.
type OrderedComparable interface {
	constraints.Ordered
	comparable
}

// Set is a collection of unique elements. The zero value is an empty set
// ready to use.
type Set[T OrderedComparable] struct {
	values map[T]struct{}
}

// New creates a set from the given elements, dropping duplicates.
func New[T OrderedComparable](ts ...T) *Set[T] {
	s := &Set[T]{values: make(map[T]struct{}, len(ts))}
	s.Add(ts...)
	return s
}

// Collect creates a set from a sequence.
func Collect[T OrderedComparable](seq iter.Seq[T]) *Set[T] {
	s := New[T]()
	for v := range seq {
		s.Add(v)
	}

	return s
}

func (s *Set[T]) Add(ts ...T) {
	if s.values == nil {
		s.values = make(map[T]struct{}, len(ts))
	}

	for _, t := range ts {
		s.values[t] = struct{}{}
	}
}

func (s *Set[T]) Remove(ts ...T) {
	for _, t := range ts {
		delete(s.values, t)
	}
}

func (s *Set[T]) Has(t T) bool {
	_, ok := s.values[t]
	return ok
}

func (s *Set[T]) Len() int {
	return len(s.values)
}

func (s *Set[T]) IsEmpty() bool {
	return s.Len() == 0
}

// Slice returns the elements in ascending order. The result is never nil.
func (s *Set[T]) Slice() []T {
	res := slices.Sorted(maps.Keys(s.values))
	if res == nil {
		return []T{}
	}

	return res
}

// All iterates the elements in ascending order.
func (s *Set[T]) All() iter.Seq[T] {
	return slices.Values(s.Slice())
}

func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{values: maps.Clone(s.values)}
}

func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	res := s.Clone()
	for v := range other.values {
		res.Add(v)
	}

	return res
}

func (s *Set[T]) Intersect(other *Set[T]) *Set[T] {
	small, large := s, other
	if small.Len() > large.Len() {
		small, large = large, small
	}

	res := New[T]()
	for v := range small.values {
		if large.Has(v) {
			res.Add(v)
		}
	}

	return res
}

// Difference returns the elements of s that are not in other.
func (s *Set[T]) Difference(other *Set[T]) *Set[T] {
	res := New[T]()
	for v := range s.values {
		if !other.Has(v) {
			res.Add(v)
		}
	}

	return res
}

func (s *Set[T]) IsSubset(other *Set[T]) bool {
	if s.Len() > other.Len() {
		return false
	}

	for v := range s.values {
		if !other.Has(v) {
			return false
		}
	}

	return true
}

func (s *Set[T]) Equal(other *Set[T]) bool {
	return s.Len() == other.Len() && s.IsSubset(other)
}

// String formats the set as {a b c}.
func (s *Set[T]) String() string {
	parts := make([]string, 0, s.Len())
	for _, v := range s.Slice() {
		parts = append(parts, fmt.Sprint(v))
	}

	return "{" + strings.Join(parts, " ") + "}"
}
