package testdump

import (
	"errors"

	"github.com/alextanhongpin/lambda/internal"
)

type DiffError = internal.DiffError

func AsDiffError(err error) (*DiffError, bool) {
	var diffErr *DiffError
	return diffErr, errors.As(err, &diffErr)
}

type TextOption struct {
	Hooks []Hook[string]
}

// Text snapshots a string as is.
func Text(rw readerWriter, str string, opt *TextOption) error {
	if opt == nil {
		opt = new(TextOption)
	}

	s := &snapshot[string]{
		MarshalFunc:   MarshalText,
		UnmarshalFunc: UnmarshalText,
		CompareFunc:   CompareText,
	}

	return Snapshot(rw, str, s, opt.Hooks...)
}

func MarshalText(str string) ([]byte, error) {
	return []byte(str), nil
}

func UnmarshalText(b []byte) (string, error) {
	return string(b), nil
}

func CompareText(snapshot, received string) error {
	return internal.ANSIDiff(snapshot, received)
}
