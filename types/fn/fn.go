// Package fn provides named function types that stand in for single-method
// interfaces. Each type carries its combinators as methods, so a closure can
// be passed wherever the interface is expected and composed in place.
package fn

import "sync"

// Func maps a T to an R.
type Func[T, R any] func(T) R

func (f Func[T, R]) Apply(t T) R {
	return f(t)
}

// Compose returns a function that applies f, then g.
func Compose[A, B, C any](f Func[A, B], g Func[B, C]) Func[A, C] {
	return func(a A) C {
		return g(f(a))
	}
}

func Identity[T any]() Func[T, T] {
	return func(t T) T {
		return t
	}
}

// BiFunc maps a pair of arguments to an R.
type BiFunc[T, U, R any] func(T, U) R

func (f BiFunc[T, U, R]) Apply(t T, u U) R {
	return f(t, u)
}

// Curry splits f into a chain of single argument functions.
func Curry[T, U, R any](f BiFunc[T, U, R]) Func[T, Func[U, R]] {
	return func(t T) Func[U, R] {
		return Bind(f, t)
	}
}

// Supplier produces a value without input.
type Supplier[T any] func() T

func (f Supplier[T]) Get() T {
	return f()
}

// Memoize returns a supplier that calls f at most once and caches the value.
// It is safe for concurrent use.
func (f Supplier[T]) Memoize() Supplier[T] {
	var (
		once sync.Once
		v    T
	)

	return func() T {
		once.Do(func() {
			v = f()
		})

		return v
	}
}

// Consumer accepts a value and returns nothing.
type Consumer[T any] func(T)

func (f Consumer[T]) Accept(t T) {
	f(t)
}

// AndThen returns a consumer that calls f, then next, with the same value.
func (f Consumer[T]) AndThen(next Consumer[T]) Consumer[T] {
	return func(t T) {
		f(t)
		next(t)
	}
}

// Runner is a task that can be run.
type Runner interface {
	Run()
}

// Runnable is a closure that satisfies Runner.
type Runnable func()

func (f Runnable) Run() {
	f()
}

var _ Runner = Runnable(nil)
