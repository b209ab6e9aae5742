package stream

import "golang.org/x/exp/constraints"

// Number is the set of types that support arithmetic.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds the elements. It returns 0 for an empty stream.
func Sum[T Number](s *Stream[T]) T {
	return s.Reduce(0, func(acc, v T) T {
		return acc + v
	})
}

// Product multiplies the elements. It returns 1 for an empty stream.
func Product[T Number](s *Stream[T]) T {
	return s.Reduce(1, func(acc, v T) T {
		return acc * v
	})
}

// Average returns the arithmetic mean, or false for an empty stream.
func Average[T Number](s *Stream[T]) (float64, bool) {
	var (
		sum float64
		n   int
	)
	for v := range s.seq {
		sum += float64(v)
		n++
	}
	if n == 0 {
		return 0, false
	}

	return sum / float64(n), true
}
