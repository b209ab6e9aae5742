// Package env loads typed values from environment variables.
package env

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrNotSet is returned when a required environment variable is not set.
	ErrNotSet = fmt.Errorf("env: variable not set")
	// ErrParseFailed is returned when parsing an environment variable fails.
	ErrParseFailed = fmt.Errorf("env: parse failed")
)

// Parseable defines the types that can be parsed from environment variables.
type Parseable interface {
	~string | ~bool | ~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Parse converts a string to T. Strings are taken verbatim, including
// spaces. Numbers and booleans must use the whole input.
func Parse[T Parseable](str string) (T, error) {
	var v T
	rv := reflect.ValueOf(&v).Elem()

	var err error
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(str)
	case reflect.Bool:
		var b bool
		b, err = strconv.ParseBool(str)
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var n int64
		n, err = strconv.ParseInt(str, 10, rv.Type().Bits())
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var n uint64
		n, err = strconv.ParseUint(str, 10, rv.Type().Bits())
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		var f float64
		f, err = strconv.ParseFloat(str, rv.Type().Bits())
		rv.SetFloat(f)
	}
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrParseFailed, err)
	}

	return v, nil
}

// Load reads and parses an environment variable.
func Load[T Parseable](name string) (T, error) {
	var zero T
	s, err := lookupEnv(name)
	if err != nil {
		return zero, err
	}

	v, err := Parse[T](strings.TrimSpace(s))
	if err != nil {
		return zero, fmt.Errorf("%w: variable %s", err, name)
	}

	return v, nil
}

// MustLoad is like Load but panics on error. Use it for required
// configuration that should fail fast.
func MustLoad[T Parseable](name string) T {
	v, err := Load[T](name)
	if err != nil {
		panic(err)
	}

	return v
}

// LoadOr returns defaultValue when the variable is not set or invalid.
func LoadOr[T Parseable](name string, defaultValue T) T {
	v, err := Load[T](name)
	if err != nil {
		return defaultValue
	}

	return v
}

// LoadDuration reads a variable in time.ParseDuration form.
func LoadDuration(name string) (time.Duration, error) {
	s, err := lookupEnv(name)
	if err != nil {
		return 0, err
	}

	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: variable %s: %s", ErrParseFailed, name, err)
	}

	return d, nil
}

// LoadTime reads a variable as a time in the given layout.
func LoadTime(name, layout string) (time.Time, error) {
	s, err := lookupEnv(name)
	if err != nil {
		return time.Time{}, err
	}

	t, err := time.Parse(layout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: variable %s: %s", ErrParseFailed, name, err)
	}

	return t, nil
}

// Override replaces *dst with the variable when it is set. An unset variable
// leaves *dst untouched; an invalid one is an error.
func Override[T Parseable](dst *T, name string) error {
	if !Exists(name) {
		return nil
	}

	v, err := Load[T](name)
	if err != nil {
		return err
	}
	*dst = v

	return nil
}

// OverrideDuration is Override for durations.
func OverrideDuration(dst *time.Duration, name string) error {
	if !Exists(name) {
		return nil
	}

	d, err := LoadDuration(name)
	if err != nil {
		return err
	}
	*dst = d

	return nil
}

// Exists checks if an environment variable is set, even if empty.
func Exists(name string) bool {
	_, ok := os.LookupEnv(name)
	return ok
}

func lookupEnv(name string) (string, error) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotSet, name)
	}

	return v, nil
}
