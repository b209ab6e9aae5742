package fn

import (
	"cmp"
	"slices"
)

// Comparator returns a negative number when a sorts before b, zero when they
// are equal and a positive number otherwise.
type Comparator[T any] func(a, b T) int

func (c Comparator[T]) Compare(a, b T) int {
	return c(a, b)
}

// Reversed returns the comparator with the order flipped.
func (c Comparator[T]) Reversed() Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// ThenComparing breaks ties of c with next.
func (c Comparator[T]) ThenComparing(next Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		if n := c(a, b); n != 0 {
			return n
		}

		return next(a, b)
	}
}

// Sort sorts s in place. The sort is stable.
func (c Comparator[T]) Sort(s []T) {
	slices.SortStableFunc(s, c)
}

// Sorted returns a sorted copy of s.
func (c Comparator[T]) Sorted(s []T) []T {
	s = slices.Clone(s)
	c.Sort(s)
	return s
}

// Min returns the smaller of a and b, preferring a on ties.
func (c Comparator[T]) Min(a, b T) T {
	if c(b, a) < 0 {
		return b
	}

	return a
}

// Max returns the larger of a and b, preferring a on ties.
func (c Comparator[T]) Max(a, b T) T {
	if c(b, a) > 0 {
		return b
	}

	return a
}

// Natural orders values ascending.
func Natural[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// ReverseOrder orders values descending.
func ReverseOrder[T cmp.Ordered]() Comparator[T] {
	return Natural[T]().Reversed()
}

// Comparing orders values by the natural order of the extracted key.
func Comparing[T any, K cmp.Ordered](key func(T) K) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// ComparingFunc orders values by the key using the given key comparator.
func ComparingFunc[T, K any](key func(T) K, c Comparator[K]) Comparator[T] {
	return func(a, b T) int {
		return c(key(a), key(b))
	}
}
