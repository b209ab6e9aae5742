package validator

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// FieldError is the validation result of a single field.
type FieldError struct {
	Field string
	Error error
}

func Field(field string, err error) FieldError {
	return FieldError{Field: field, Error: err}
}

// Errors maps a field name to its failure message.
type Errors map[string]string

// Error lists the failures sorted by field name.
func (ve Errors) Error() string {
	errs := make([]string, 0, len(ve))
	for _, field := range slices.Sorted(maps.Keys(ve)) {
		errs = append(errs, fmt.Sprintf("%s: %s", field, ve[field]))
	}

	return strings.Join(errs, "\n")
}

// NewErrors collects the failed fields. It returns nil when every field is
// valid, so the result can be returned directly as an error.
func NewErrors(fes ...FieldError) error {
	ve := make(Errors)
	for _, fe := range fes {
		if fe.Error == nil {
			continue
		}
		ve[fe.Field] = fe.Error.Error()
	}

	if len(ve) == 0 {
		return nil
	}

	return ve
}
