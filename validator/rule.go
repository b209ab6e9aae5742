package validator

import (
	"context"
	"errors"
)

// ErrInvalid is returned by rules built from a Validator.
var ErrInvalid = errors.New("validator: invalid")

// Rule checks a value and explains the failure.
type Rule[T any] func(T) error

func (r Rule[T]) Check(t T) error {
	return r(t)
}

// Check runs the rules in order and returns the first failure.
func Check[T any](t T, rules ...Rule[T]) error {
	for _, r := range rules {
		if err := r(t); err != nil {
			return err
		}
	}

	return nil
}

// Verifier is a Rule that needs a context.
type Verifier[T any] func(ctx context.Context, t T) error

// Verify runs the verifiers in order and returns the first failure. It stops
// early when ctx is done.
func Verify[T any](ctx context.Context, t T, vs ...Verifier[T]) error {
	for _, v := range vs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := v(ctx, t); err != nil {
			return err
		}
	}

	return nil
}

// FromRule turns a rule into a boolean validator.
func FromRule[T any](r Rule[T]) Validator[T] {
	return func(t T) bool {
		return r(t) == nil
	}
}

// ToRule turns a validator into a rule that fails with err, or ErrInvalid
// when err is nil.
func ToRule[T any](v Validator[T], err error) Rule[T] {
	if err == nil {
		err = ErrInvalid
	}

	return func(t T) error {
		if v(t) {
			return nil
		}

		return err
	}
}
