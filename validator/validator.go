// Package validator composes checks over values.
//
// Validator is the boolean form: a predicate with And/Or combinators, used
// where only a yes or no is needed. Rule is the error form, used where the
// caller needs to know what failed.
package validator

import (
	"reflect"
	"unicode/utf8"
)

// Validator reports whether a value is valid.
type Validator[T any] func(T) bool

func (v Validator[T]) Validate(t T) bool {
	return v(t)
}

// And requires both validators to pass. other is skipped when v fails.
func (v Validator[T]) And(other Validator[T]) Validator[T] {
	return func(t T) bool {
		return v(t) && other(t)
	}
}

// Or requires either validator to pass. other is skipped when v passes.
func (v Validator[T]) Or(other Validator[T]) Validator[T] {
	return func(t T) bool {
		return v(t) || other(t)
	}
}

func (v Validator[T]) Not() Validator[T] {
	return func(t T) bool {
		return !v(t)
	}
}

// All passes when every validator passes. It passes for no validators.
func All[T any](vs ...Validator[T]) Validator[T] {
	return func(t T) bool {
		for _, v := range vs {
			if !v(t) {
				return false
			}
		}

		return true
	}
}

// Any passes when at least one validator passes. It fails for no validators.
func Any[T any](vs ...Validator[T]) Validator[T] {
	return func(t T) bool {
		for _, v := range vs {
			if v(t) {
				return true
			}
		}

		return false
	}
}

// NotNil fails for nil pointers, maps, slices, channels, funcs and
// interfaces. Kinds that cannot be nil always pass.
func NotNil[T any]() Validator[T] {
	return func(t T) bool {
		v := reflect.ValueOf(&t).Elem()
		switch v.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
			reflect.Func, reflect.Interface, reflect.UnsafePointer:
			return !v.IsNil()
		default:
			return true
		}
	}
}

// NotZero fails for the zero value of T.
func NotZero[T comparable]() Validator[T] {
	return func(t T) bool {
		var zero T
		return t != zero
	}
}

// MinLen passes for strings of at least n characters.
func MinLen(n int) Validator[string] {
	return func(s string) bool {
		return utf8.RuneCountInString(s) >= n
	}
}

// MaxLen passes for strings of at most n characters.
func MaxLen(n int) Validator[string] {
	return func(s string) bool {
		return utf8.RuneCountInString(s) <= n
	}
}
