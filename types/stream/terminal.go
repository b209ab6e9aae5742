package stream

// Collect gathers the elements into a slice. The result is never nil.
func (s *Stream[T]) Collect() []T {
	res := make([]T, 0)
	for v := range s.seq {
		res = append(res, v)
	}

	return res
}

// ToSlice is an alias of Collect.
func (s *Stream[T]) ToSlice() []T {
	return s.Collect()
}

func (s *Stream[T]) ForEach(fn func(T)) {
	for v := range s.seq {
		fn(v)
	}
}

func (s *Stream[T]) Count() int {
	var n int
	for range s.seq {
		n++
	}

	return n
}

// AnyMatch reports whether any element matches. It stops at the first match
// and returns false for an empty stream.
func (s *Stream[T]) AnyMatch(fn func(T) bool) bool {
	for v := range s.seq {
		if fn(v) {
			return true
		}
	}

	return false
}

// AllMatch reports whether every element matches. It returns true for an
// empty stream.
func (s *Stream[T]) AllMatch(fn func(T) bool) bool {
	for v := range s.seq {
		if !fn(v) {
			return false
		}
	}

	return true
}

// NoneMatch reports whether no element matches.
func (s *Stream[T]) NoneMatch(fn func(T) bool) bool {
	return !s.AnyMatch(fn)
}

// FindFirst returns the first element, or false for an empty stream.
func (s *Stream[T]) FindFirst() (T, bool) {
	for v := range s.seq {
		return v, true
	}

	var zero T
	return zero, false
}

// FindAny returns some element, or false for an empty stream. Streams are
// sequential, so it is the first one.
func (s *Stream[T]) FindAny() (T, bool) {
	return s.FindFirst()
}

// Reduce folds the elements into identity using op.
func (s *Stream[T]) Reduce(identity T, op func(acc, v T) T) T {
	acc := identity
	for v := range s.seq {
		acc = op(acc, v)
	}

	return acc
}

// ReduceOpt folds the elements using the first element as the seed. It
// returns false for an empty stream.
func (s *Stream[T]) ReduceOpt(op func(acc, v T) T) (T, bool) {
	var (
		acc T
		ok  bool
	)
	for v := range s.seq {
		if !ok {
			acc, ok = v, true
			continue
		}
		acc = op(acc, v)
	}

	return acc, ok
}

// Min returns the smallest element according to cmp. On ties the first
// element wins.
func (s *Stream[T]) Min(cmp func(a, b T) int) (T, bool) {
	return s.ReduceOpt(func(acc, v T) T {
		if cmp(v, acc) < 0 {
			return v
		}
		return acc
	})
}

// Max returns the largest element according to cmp. On ties the first
// element wins.
func (s *Stream[T]) Max(cmp func(a, b T) int) (T, bool) {
	return s.ReduceOpt(func(acc, v T) T {
		if cmp(v, acc) > 0 {
			return v
		}
		return acc
	})
}
