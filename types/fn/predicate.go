package fn

// Predicate reports whether a value satisfies a condition.
type Predicate[T any] func(T) bool

func (p Predicate[T]) Test(t T) bool {
	return p(t)
}

// And short-circuits: other is not called when p fails.
func (p Predicate[T]) And(other Predicate[T]) Predicate[T] {
	return func(t T) bool {
		return p(t) && other(t)
	}
}

// Or short-circuits: other is not called when p holds.
func (p Predicate[T]) Or(other Predicate[T]) Predicate[T] {
	return func(t T) bool {
		return p(t) || other(t)
	}
}

func (p Predicate[T]) Negate() Predicate[T] {
	return func(t T) bool {
		return !p(t)
	}
}

// Not is the free form of Negate, handy for function values that are not
// yet typed as a Predicate.
func Not[T any](p func(T) bool) Predicate[T] {
	return Predicate[T](p).Negate()
}

// IsEqual returns a predicate that matches values equal to v.
func IsEqual[T comparable](v T) Predicate[T] {
	return func(t T) bool {
		return t == v
	}
}

func True[T any]() Predicate[T] {
	return func(T) bool { return true }
}

func False[T any]() Predicate[T] {
	return func(T) bool { return false }
}
