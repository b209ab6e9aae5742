package demo

import (
	"context"
	"strings"

	"github.com/alextanhongpin/lambda/internal/people"
	"github.com/alextanhongpin/lambda/types/fn"
	"github.com/alextanhongpin/lambda/types/stream"
	"github.com/alextanhongpin/lambda/validator"
)

func Validator(ctx context.Context, env *Env) error {
	p := &printer{w: env.Out}

	notEmpty := validator.NotZero[string]()
	minLen := validator.MinLen(5)
	combined := notEmpty.And(minLen)

	for _, s := range []string{"Hello", "Hi", ""} {
		p.Printf("validate %q: %t\n", s, combined.Validate(s))
	}

	short := validator.MaxLen(2)
	p.Printf("validate %q with or: %t\n", "Hi", minLen.Or(short).Validate("Hi"))

	var missing *people.Person
	p.Printf("not nil: %t\n", validator.NotNil[*people.Person]().Validate(missing))

	invalid := people.New("", -1)
	if err := invalid.Validate(); err != nil {
		p.Printf("validate %v:\n%v\n", invalid, err)
	}

	return p.err
}

func filterNames(names []string, pred fn.Predicate[string]) []string {
	res := make([]string, 0, len(names))
	for _, name := range names {
		if pred.Test(name) {
			res = append(res, name)
		}
	}

	return res
}

func Predicate(ctx context.Context, env *Env) error {
	p := &printer{w: env.Out}

	names := []string{"John", "Alice", "Bob", "Diana", "Eve"}

	var loop []string
	for _, name := range names {
		if strings.HasPrefix(name, "A") {
			loop = append(loop, name)
		}
	}
	p.Printf("loop: %v\n", loop)

	startsWithA := fn.Predicate[string](func(name string) bool {
		return strings.HasPrefix(name, "A")
	})
	longerThan3 := fn.Predicate[string](func(name string) bool {
		return len(name) > 3
	})

	p.Printf("starts with A: %v\n", filterNames(names, startsWithA))
	p.Printf("longer than 3: %v\n", filterNames(names, longerThan3))
	p.Printf("both: %v\n", filterNames(names, startsWithA.And(longerThan3)))
	p.Printf("either: %v\n", filterNames(names, startsWithA.Or(longerThan3)))
	p.Printf("neither: %v\n", filterNames(names, startsWithA.Or(longerThan3).Negate()))

	return p.err
}

func Collection(ctx context.Context, env *Env) error {
	p := &printer{w: env.Out}

	names := stream.Of("Alice", "Bob", "Charlie", "David").
		Filter(func(name string) bool { return len(name) > 3 }).
		Map(strings.ToUpper)

	stream.SortedNatural(names).ForEach(func(name string) {
		p.Println(name)
	})

	return p.err
}
