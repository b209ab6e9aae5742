package validator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alextanhongpin/lambda/validator"
	"github.com/stretchr/testify/assert"
)

func TestValidator(t *testing.T) {
	notEmpty := validator.NotZero[string]()
	combined := notEmpty.And(validator.MinLen(5))

	tests := []struct {
		name string
		v    validator.Validator[string]
		in   string
		want bool
	}{
		{"combined valid", combined, "Hello", true},
		{"combined too short", combined, "Hi", false},
		{"combined empty", combined, "", false},
		{"or", validator.MinLen(10).Or(validator.MaxLen(2)), "Hi", true},
		{"not", notEmpty.Not(), "", true},
		{"min len counts runes", validator.MinLen(2), "日本", true},
		{"all", validator.All(notEmpty, validator.MaxLen(3)), "abc", true},
		{"all empty", validator.All[string](), "", true},
		{"any", validator.Any(validator.MinLen(9), validator.MaxLen(3)), "abcd", false},
		{"any empty", validator.Any[string](), "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.v.Validate(tc.in))
		})
	}
}

func TestNotNil(t *testing.T) {
	s := "hello"
	assert.True(t, validator.NotNil[*string]()(&s))
	assert.False(t, validator.NotNil[*string]()(nil))
	assert.False(t, validator.NotNil[[]int]()(nil))
	assert.True(t, validator.NotNil[[]int]()([]int{}))
	assert.False(t, validator.NotNil[map[string]int]()(nil))
	assert.False(t, validator.NotNil[error]()(nil))
	assert.True(t, validator.NotNil[any]()(0))
	assert.True(t, validator.NotNil[string]()(""), "strings are never nil")
}

func TestRule(t *testing.T) {
	errShort := errors.New("too short")
	short := validator.ToRule(validator.MinLen(5), errShort)

	assert.ErrorIs(t, validator.Check("Hi", short), errShort)
	assert.Nil(t, validator.Check("Hello", short))
	assert.ErrorIs(t, validator.ToRule(validator.MinLen(5), nil)("Hi"), validator.ErrInvalid)
	assert.True(t, validator.FromRule(short)("Hello"))

	t.Run("first failure wins", func(t *testing.T) {
		errA, errB := errors.New("a"), errors.New("b")
		err := validator.Check(0,
			func(int) error { return nil },
			func(int) error { return errA },
			func(int) error { return errB },
		)
		assert.ErrorIs(t, err, errA)
	})
}

func TestVerify(t *testing.T) {
	type key struct{}
	loggedIn := func(ctx context.Context, id string) error {
		if ctx.Value(key{}) != id {
			return errors.New("forbidden")
		}
		return nil
	}

	ctx := context.WithValue(context.Background(), key{}, "user-1")
	assert.Nil(t, validator.Verify(ctx, "user-1", loggedIn))
	assert.EqualError(t, validator.Verify(ctx, "user-2", loggedIn), "forbidden")

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, validator.Verify(canceled, "user-1", loggedIn), context.Canceled)
}

func TestNewErrors(t *testing.T) {
	assert.Nil(t, validator.NewErrors(validator.Field("name", nil)))

	err := validator.NewErrors(
		validator.Field("name", errors.New("required")),
		validator.Field("age", errors.New("must be at least 0")),
		validator.Field("city", nil),
	)

	var ve validator.Errors
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, "age: must be at least 0\nname: required", err.Error())
	assert.Equal(t, validator.Errors{"age": "must be at least 0", "name": "required"}, ve)
}
