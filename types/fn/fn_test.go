package fn_test

import (
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/alextanhongpin/lambda/types/fn"
	"github.com/stretchr/testify/assert"
)

func TestFunc(t *testing.T) {
	t.Run("Compose", func(t *testing.T) {
		length := fn.Func[string, int](func(s string) int { return len(s) })
		double := fn.Func[int, int](func(n int) int { return n * 2 })
		assert.Equal(t, 10, fn.Compose(length, double).Apply("hello"))
	})

	t.Run("Identity", func(t *testing.T) {
		assert.Equal(t, "x", fn.Identity[string]().Apply("x"))
	})

	t.Run("Bind", func(t *testing.T) {
		concat := fn.BiFunc[string, string, string](func(a, b string) string { return a + b })
		addPrefix := fn.Bind(concat, "Mr. ")
		assert.Equal(t, "Mr. Smith", addPrefix("Smith"))
	})

	t.Run("Curry", func(t *testing.T) {
		add := fn.BiFunc[int, int, int](func(a, b int) int { return a + b })
		assert.Equal(t, 5, fn.Curry(add)(2)(3))
	})

	t.Run("Flip", func(t *testing.T) {
		hasPrefix := fn.BiFunc[string, string, bool](strings.HasPrefix)
		startsWithA := fn.Bind(fn.Flip(hasPrefix), "A")
		assert.True(t, startsWithA("Alice"))
		assert.False(t, startsWithA("Bob"))
	})

	t.Run("Must", func(t *testing.T) {
		atoi := fn.Must(strconv.Atoi)
		assert.Equal(t, 123, atoi("123"))
		assert.Panics(t, func() { atoi("abc") })
	})

	t.Run("Lift", func(t *testing.T) {
		n, err := fn.Lift(strings.ToUpper)("a")
		assert.Nil(t, err)
		assert.Equal(t, "A", n)
	})
}

func TestSupplier(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		type point struct{ X, Y int }
		a, b := fn.New[point]().Get(), fn.New[point]().Get()
		assert.NotSame(t, a, b)
		assert.Equal(t, point{}, *a)
	})

	t.Run("Make", func(t *testing.T) {
		s := fn.Make[[]string]().Get()
		assert.NotNil(t, s)
		assert.Len(t, s, 0)
	})

	t.Run("Memoize", func(t *testing.T) {
		var calls atomic.Int32
		get := fn.Supplier[int](func() int {
			calls.Add(1)
			return 42
		}).Memoize()

		var wg sync.WaitGroup
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.Equal(t, 42, get())
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestConsumer(t *testing.T) {
	var got []string
	record := fn.Consumer[string](func(s string) { got = append(got, s) })
	shout := fn.Consumer[string](func(s string) { got = append(got, strings.ToUpper(s)) })
	record.AndThen(shout).Accept("hi")
	assert.Equal(t, []string{"hi", "HI"}, got)
}

type task struct {
	ran *bool
}

func (t task) Run() { *t.ran = true }

func TestRunner(t *testing.T) {
	var a, b bool
	runners := []fn.Runner{
		task{ran: &a},
		fn.Runnable(func() { b = true }),
	}
	for _, r := range runners {
		r.Run()
	}
	assert.True(t, a)
	assert.True(t, b)
}

func TestPredicate(t *testing.T) {
	startsWithA := fn.Predicate[string](func(s string) bool { return strings.HasPrefix(s, "A") })
	longerThan3 := fn.Predicate[string](func(s string) bool { return len(s) > 3 })

	tests := []struct {
		name string
		p    fn.Predicate[string]
		in   string
		want bool
	}{
		{"and true", startsWithA.And(longerThan3), "Alice", true},
		{"and false", startsWithA.And(longerThan3), "Al", false},
		{"or true", startsWithA.Or(longerThan3), "John", true},
		{"or false", startsWithA.Or(longerThan3), "Bob", false},
		{"negate", startsWithA.Negate(), "Bob", true},
		{"not", fn.Not(startsWithA), "Alice", false},
		{"is equal", fn.IsEqual("Eve"), "Eve", true},
		{"true", fn.True[string](), "", true},
		{"false", fn.False[string](), "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.p.Test(tc.in))
		})
	}

	t.Run("short circuit", func(t *testing.T) {
		var called bool
		spy := fn.Predicate[string](func(string) bool {
			called = true
			return true
		})
		fn.False[string]().And(spy).Test("x")
		fn.True[string]().Or(spy).Test("x")
		assert.False(t, called)
	})
}
