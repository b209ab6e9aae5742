// Package testdump compares values against snapshot files kept next to the
// tests. A missing snapshot is written on the first run; run the tests with
// -update to overwrite existing ones.
package testdump

import (
	"flag"
	"os"

	"github.com/alextanhongpin/lambda/internal"
)

var update = flag.Bool("update", false, "update the dump file")

// Hook decorates a snapshotter.
type Hook[T any] func(S[T]) S[T]

type Hooks[T any] []Hook[T]

// Apply wraps s so that the hooks run from left to right.
func (hooks Hooks[T]) Apply(s S[T]) S[T] {
	for i := len(hooks) - 1; i >= 0; i-- {
		s = hooks[i](s)
	}

	return s
}

// Snapshot marshals t, stores it through rw and compares it against what rw
// holds.
func Snapshot[T any](rw readerWriter, t T, s S[T], hooks ...Hook[T]) error {
	s = Hooks[T](hooks).Apply(s)

	b, err := s.Marshal(t)
	if err != nil {
		return err
	}

	if err := rw.Write(b); err != nil {
		return err
	}

	// Unmarshal the received bytes too, so both sides go through the same
	// lossy round trip.
	received, err := s.Unmarshal(b)
	if err != nil {
		return err
	}

	b, err = rw.Read()
	if err != nil {
		return err
	}

	snapshot, err := s.Unmarshal(b)
	if err != nil {
		return err
	}

	return s.Compare(snapshot, received)
}

// MarshalHook transforms the value before it is marshalled, e.g. to mask
// values that change between runs.
func MarshalHook[T any](hook func(T) (T, error)) Hook[T] {
	return func(s S[T]) S[T] {
		return &marshalHook[T]{S: s, hook: hook}
	}
}

// CompareHook runs an extra comparison before the default one.
func CompareHook[T any](hook func(snapshot, received T) error) Hook[T] {
	return func(s S[T]) S[T] {
		return &compareHook[T]{S: s, hook: hook}
	}
}

// Copier deep copies the value before the other hooks see it, so marshal
// hooks may mutate freely.
func Copier[T any]() Hook[T] {
	return MarshalHook(internal.Copy[T])
}

type marshalHook[T any] struct {
	S[T]
	hook func(T) (T, error)
}

func (m *marshalHook[T]) Marshal(t T) ([]byte, error) {
	t, err := m.hook(t)
	if err != nil {
		return nil, err
	}

	return m.S.Marshal(t)
}

type compareHook[T any] struct {
	S[T]
	hook func(snapshot, received T) error
}

func (c *compareHook[T]) Compare(snapshot, received T) error {
	if err := c.hook(snapshot, received); err != nil {
		return err
	}

	return c.S.Compare(snapshot, received)
}

// File stores the snapshot on disk.
type File struct {
	Name string
}

func NewFile(name string) *File {
	return &File{Name: name}
}

func (rw *File) Read() ([]byte, error) {
	return os.ReadFile(rw.Name)
}

func (rw *File) Write(b []byte) error {
	return internal.WriteFile(rw.Name, b, *update)
}

// InMemory stores the snapshot in memory. The first write wins unless
// Idempotent is false.
type InMemory struct {
	Idempotent bool
	Data       []byte
}

func NewInMemory() *InMemory {
	return &InMemory{Idempotent: true}
}

func (rw *InMemory) Read() ([]byte, error) {
	return rw.Data, nil
}

func (rw *InMemory) Write(b []byte) error {
	if rw.Idempotent && rw.Data != nil {
		return nil
	}
	rw.Data = b

	return nil
}
