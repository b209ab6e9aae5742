package testdump

type readerWriter interface {
	Read() ([]byte, error)
	Write([]byte) error
}

// S marshals, unmarshals and compares snapshots of T.
type S[T any] interface {
	Marshal(T) ([]byte, error)
	Unmarshal([]byte) (T, error)
	Compare(snapshot, received T) error
}

type snapshot[T any] struct {
	MarshalFunc[T]
	UnmarshalFunc[T]
	CompareFunc[T]
}

var _ S[any] = (*snapshot[any])(nil)

type MarshalFunc[T any] func(T) ([]byte, error)

func (f MarshalFunc[T]) Marshal(t T) ([]byte, error) {
	return f(t)
}

type UnmarshalFunc[T any] func([]byte) (T, error)

func (f UnmarshalFunc[T]) Unmarshal(b []byte) (T, error) {
	return f(b)
}

type CompareFunc[T any] func(snapshot, received T) error

func (f CompareFunc[T]) Compare(snapshot, received T) error {
	return f(snapshot, received)
}
