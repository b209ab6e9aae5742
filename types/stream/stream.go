// Package stream provides a lazy, chainable pipeline over iter.Seq.
//
// Intermediate operations (Filter, Map, Sorted, Limit, ...) only describe the
// pipeline. Nothing is evaluated until a terminal operation (Collect, Count,
// Reduce, ...) ranges over it. Type changing stages are free functions since
// methods cannot declare type parameters.
//
// A Stream re-evaluates its source every time a terminal operation runs. For
// one-shot sources such as Generate, consume the stream once.
package stream

import (
	"cmp"
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// Stream is a lazy sequence of T.
type Stream[T any] struct {
	seq iter.Seq[T]
}

// Of creates a stream from a variadic list of values.
func Of[T any](vs ...T) *Stream[T] {
	return From(vs)
}

// From creates a stream over a slice. The slice is not copied.
func From[T any](vs []T) *Stream[T] {
	return FromSeq(slices.Values(vs))
}

// FromSeq wraps an existing sequence.
func FromSeq[T any](seq iter.Seq[T]) *Stream[T] {
	return &Stream[T]{seq: seq}
}

// Range yields the integers in [start, end).
func Range[T constraints.Integer](start, end T) *Stream[T] {
	return FromSeq(func(yield func(T) bool) {
		for i := start; i < end; i++ {
			if !yield(i) {
				return
			}
		}
	})
}

// Iterate yields seed, next(seed), next(next(seed)), ... without end.
func Iterate[T any](seed T, next func(T) T) *Stream[T] {
	return FromSeq(func(yield func(T) bool) {
		for v := seed; ; v = next(v) {
			if !yield(v) {
				return
			}
		}
	})
}

// Generate yields the values of fn without end.
func Generate[T any](fn func() T) *Stream[T] {
	return FromSeq(func(yield func(T) bool) {
		for {
			if !yield(fn()) {
				return
			}
		}
	})
}

// Concat yields the elements of a, then b.
func Concat[T any](a, b *Stream[T]) *Stream[T] {
	return FromSeq(func(yield func(T) bool) {
		for v := range a.seq {
			if !yield(v) {
				return
			}
		}
		for v := range b.seq {
			if !yield(v) {
				return
			}
		}
	})
}

// Seq returns the underlying sequence.
func (s *Stream[T]) Seq() iter.Seq[T] {
	return s.seq
}

// Filter keeps the elements that match fn.
func (s *Stream[T]) Filter(fn func(T) bool) *Stream[T] {
	seq := s.seq
	return FromSeq(func(yield func(T) bool) {
		for v := range seq {
			if fn(v) && !yield(v) {
				return
			}
		}
	})
}

// Map transforms each element. Use the Map function to change the type.
func (s *Stream[T]) Map(fn func(T) T) *Stream[T] {
	return Map(s, fn)
}

// Peek calls fn on each element as it passes through.
func (s *Stream[T]) Peek(fn func(T)) *Stream[T] {
	seq := s.seq
	return FromSeq(func(yield func(T) bool) {
		for v := range seq {
			fn(v)
			if !yield(v) {
				return
			}
		}
	})
}

// Sorted buffers the stream and yields it in the order of cmp. The sort is
// stable.
func (s *Stream[T]) Sorted(cmp func(a, b T) int) *Stream[T] {
	seq := s.seq
	return FromSeq(func(yield func(T) bool) {
		for _, v := range slices.SortedStableFunc(seq, cmp) {
			if !yield(v) {
				return
			}
		}
	})
}

// Limit truncates the stream to at most n elements. The source is not pulled
// past the n-th element, so it is safe on infinite streams.
func (s *Stream[T]) Limit(n int) *Stream[T] {
	seq := s.seq
	return FromSeq(func(yield func(T) bool) {
		if n <= 0 {
			return
		}

		var i int
		for v := range seq {
			if !yield(v) {
				return
			}
			i++
			if i >= n {
				return
			}
		}
	})
}

// Skip drops the first n elements.
func (s *Stream[T]) Skip(n int) *Stream[T] {
	seq := s.seq
	return FromSeq(func(yield func(T) bool) {
		var i int
		for v := range seq {
			if i < n {
				i++
				continue
			}
			if !yield(v) {
				return
			}
		}
	})
}

// TakeWhile yields elements until fn first fails.
func (s *Stream[T]) TakeWhile(fn func(T) bool) *Stream[T] {
	seq := s.seq
	return FromSeq(func(yield func(T) bool) {
		for v := range seq {
			if !fn(v) || !yield(v) {
				return
			}
		}
	})
}

// DropWhile skips elements until fn first fails, then yields the rest.
func (s *Stream[T]) DropWhile(fn func(T) bool) *Stream[T] {
	seq := s.seq
	return FromSeq(func(yield func(T) bool) {
		dropping := true
		for v := range seq {
			if dropping && fn(v) {
				continue
			}
			dropping = false
			if !yield(v) {
				return
			}
		}
	})
}

// Map transforms each element of s into an R.
func Map[T, R any](s *Stream[T], fn func(T) R) *Stream[R] {
	seq := s.seq
	return FromSeq(func(yield func(R) bool) {
		for v := range seq {
			if !yield(fn(v)) {
				return
			}
		}
	})
}

// FlatMap replaces each element with the elements of the returned slice.
func FlatMap[T, R any](s *Stream[T], fn func(T) []R) *Stream[R] {
	return FlatMapSeq(s, func(t T) iter.Seq[R] {
		return slices.Values(fn(t))
	})
}

// FlatMapSeq replaces each element with the elements of the returned sequence.
func FlatMapSeq[T, R any](s *Stream[T], fn func(T) iter.Seq[R]) *Stream[R] {
	seq := s.seq
	return FromSeq(func(yield func(R) bool) {
		for v := range seq {
			for r := range fn(v) {
				if !yield(r) {
					return
				}
			}
		}
	})
}

// Distinct drops repeated elements, keeping the first occurrence.
func Distinct[T comparable](s *Stream[T]) *Stream[T] {
	seq := s.seq
	return FromSeq(func(yield func(T) bool) {
		seen := make(map[T]struct{})
		for v := range seq {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			if !yield(v) {
				return
			}
		}
	})
}

// SortedNatural sorts the stream ascending.
func SortedNatural[T cmp.Ordered](s *Stream[T]) *Stream[T] {
	return s.Sorted(cmp.Compare[T])
}
