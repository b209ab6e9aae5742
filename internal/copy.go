package internal

import (
	"errors"

	"github.com/mitchellh/copystructure"
)

var ErrCopyFailed = errors.New("internal: copy returned a different type")

// Copy returns a deep copy of t.
func Copy[T any](t T) (T, error) {
	v, err := copystructure.Copy(t)
	if err != nil {
		return t, err
	}

	c, ok := v.(T)
	if !ok {
		return t, ErrCopyFailed
	}

	return c, nil
}
