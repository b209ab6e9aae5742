package demo

import (
	"context"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alextanhongpin/lambda/internal/people"
	"github.com/alextanhongpin/lambda/internal/workers"
	"github.com/alextanhongpin/lambda/types/fn"
	"github.com/alextanhongpin/lambda/types/stream"
)

func Lambda(ctx context.Context, env *Env) error {
	p := &printer{w: env.Out}

	list := []string{"a", "b", "c", "d", "e"}

	// A named comparator, a closure and the natural order all sort the same
	// way.
	slices.SortFunc(list, descending)
	slices.SortFunc(list, func(a, b string) int { return strings.Compare(b, a) })
	p.Printf("sorted descending: %v\n", list)

	slices.SortFunc(list, strings.Compare)
	fn.Natural[string]().Sort(list)
	p.Printf("sorted: %v\n", list)

	family := people.Family()
	people.ByAge.Sort(family)
	p.Printf("sort by age: %v\n", family)

	people.ByName.Sort(family)
	p.Printf("sort by name: %v\n", family)

	people.ByAgeThenName.Sort(family)
	p.Printf("sort by age then name: %v\n", family)

	return p.err
}

func descending(a, b string) int {
	return strings.Compare(b, a)
}

func Thread(ctx context.Context, env *Env) error {
	m, err := workers.NewMetrics(env.Registry)
	if err != nil {
		return err
	}

	pool := workers.New(env.Out, m)
	pool.Logger = env.Logger
	pool.Sleep = env.Config.Workers.Sleep.Duration

	pool.Greet()

	return pool.Run(ctx, env.Config.Workers.Count)
}

type prefix string

func (p prefix) Concat(s string) string {
	return string(p) + s
}

func MethodRef(ctx context.Context, env *Env) error {
	p := &printer{w: env.Out}

	// Package level functions.
	parse := fn.Must(strconv.Atoi)
	p.Printf("parse: %d\n", parse.Apply("123"))

	abs := fn.Func[float64, float64](math.Abs)
	p.Printf("abs: %v\n", abs.Apply(-123))

	// Method value bound to a receiver.
	addPrefix := fn.Func[string, string](prefix("Mr. ").Concat)
	p.Printf("prefix: %s\n", addPrefix.Apply("Smith"))

	// Method expression taking the receiver as the first argument.
	concat := fn.BiFunc[prefix, string, string](prefix.Concat)
	p.Printf("concat: %s\n", concat.Apply("Dr. ", "Who"))

	equals := fn.IsEqual("hello")
	p.Printf("equals: %t\n", equals.Test("hello"))

	lengths := stream.Map(stream.Of("Alice", "Bob", "Marry"), utf8.RuneCountInString)
	p.Printf("lengths: %v\n", lengths.Collect())

	names := stream.Map(stream.From(people.Family()), people.Person.String)
	p.Printf("strings: %v\n", names.Collect())

	// Constructors.
	list := fn.Make[[]string]().Get()
	p.Printf("new list: %v (len %d)\n", list, len(list))

	p.Printf("parsed: %d\n", parse.Apply("456"))

	newPerson := fn.Constructor(people.New)
	p.Printf("person: %v\n", newPerson.Apply("Tom", 25))

	return p.err
}
