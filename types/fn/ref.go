package fn

// The helpers below turn existing functions, methods and constructors into
// the function types of this package.
//
// A static function is already a value:
//
//	abs := fn.Func[float64, float64](math.Abs)
//
// A method value binds the receiver:
//
//	clean := fn.Func[string, string](strings.NewReplacer("\t", " ").Replace)
//
// A method expression leaves the receiver as the first argument:
//
//	name := fn.Func[Person, string](Person.Name)

// Bind fixes the first argument of f.
func Bind[T, U, R any](f BiFunc[T, U, R], t T) Func[U, R] {
	return func(u U) R {
		return f(t, u)
	}
}

// Flip swaps the arguments of f.
func Flip[T, U, R any](f BiFunc[T, U, R]) BiFunc[U, T, R] {
	return func(u U, t T) R {
		return f(t, u)
	}
}

// Must converts a fallible function into one that panics on error.
func Must[T, R any](f func(T) (R, error)) Func[T, R] {
	return func(t T) R {
		r, err := f(t)
		if err != nil {
			panic(err)
		}

		return r
	}
}

// Lift converts an infallible function into the fallible shape.
func Lift[T, R any](f func(T) R) func(T) (R, error) {
	return func(t T) (R, error) {
		return f(t), nil
	}
}

// New returns a supplier that allocates a zero T on every call.
func New[T any]() Supplier[*T] {
	return func() *T {
		return new(T)
	}
}

// Make returns a supplier of empty, non-nil slices.
func Make[S ~[]E, E any]() Supplier[S] {
	return func() S {
		return make(S, 0)
	}
}

// Constructor adapts a two argument constructor.
func Constructor[T, U, R any](f func(T, U) R) BiFunc[T, U, R] {
	return f
}
