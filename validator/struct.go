package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	playground "github.com/go-playground/validator/v10"
)

var structValidator = sync.OnceValue(func() *playground.Validate {
	v := playground.New(playground.WithRequiredStructEnabled())

	// Report fields by their serialized name.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "yaml", "toml"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}

		return strings.ToLower(f.Name)
	})

	return v
})

// Struct returns a rule that validates the `validate` struct tags of T.
// Tag failures are reported as Errors.
func Struct[T any]() Rule[T] {
	return func(t T) error {
		err := structValidator().Struct(t)
		if err == nil {
			return nil
		}

		var ves playground.ValidationErrors
		if !errors.As(err, &ves) {
			return err
		}

		fes := make([]FieldError, 0, len(ves))
		for _, fe := range ves {
			fes = append(fes, Field(fe.Field(), errors.New(message(fe))))
		}

		return NewErrors(fes...)
	}
}

func message(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return fmt.Sprintf("failed %q", fe.Tag())
	}
}
