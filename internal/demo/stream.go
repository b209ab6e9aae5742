package demo

import (
	"cmp"
	"context"
	"math/rand/v2"
	"strings"

	"github.com/alextanhongpin/lambda/types/stream"
)

func Stream(ctx context.Context, env *Env) error {
	p := &printer{w: env.Out}

	for _, section := range []func(*printer){
		createStream,
		filterStream,
		mapStream,
		limitAndSkip,
		sortedStream,
		collectStream,
		searchAndMatch,
		aggregateStream,
	} {
		section(p)
	}

	return p.err
}

func createStream(p *printer) {
	p.Println("-- create")
	p.Printf("of: %v\n", stream.Of("a", "b", "c").Collect())
	p.Printf("from slice: %v\n", stream.From([]string{"a", "b", "c"}).Collect())
	p.Printf("range: %v\n", stream.Range(1, 5).Collect())
	p.Printf("doubles: %v\n", stream.Of(1.1, 2.2, 3.3).Collect())
	p.Printf("iterate: %v\n", stream.Iterate(0, func(n int) int { return n + 2 }).Limit(5).Collect())

	random := stream.Generate(rand.Float64).Limit(3)
	p.Printf("generate: %t\n", random.AllMatch(func(f float64) bool { return f >= 0 && f < 1 }))
}

func filterStream(p *printer) {
	p.Println("-- filter")
	numbers := stream.Range(1, 11)
	p.Printf("even: %v\n", numbers.Filter(func(n int) bool { return n%2 == 0 }).Collect())
	p.Printf("distinct: %v\n", stream.Distinct(stream.Of(1, 2, 2, 3, 3, 3)).Collect())
}

func mapStream(p *printer) {
	p.Println("-- map")
	words := stream.Of("Lambda", "Stream", "API")
	p.Printf("lengths: %v\n", stream.Map(words, func(s string) int { return len(s) }).Collect())

	nested := stream.Of([]string{"a", "b"}, []string{"c", "d"})
	p.Printf("flat: %v\n", stream.FlatMap(nested, func(s []string) []string { return s }).Collect())
}

func limitAndSkip(p *printer) {
	p.Println("-- limit and skip")
	numbers := stream.Range(1, 11)
	p.Printf("limit: %v\n", numbers.Limit(5).Collect())
	p.Printf("skip: %v\n", numbers.Skip(5).Collect())
}

func sortedStream(p *printer) {
	p.Println("-- sorted")
	names := stream.Of("John", "Alice", "Bob", "Diana")
	p.Printf("natural: %v\n", stream.SortedNatural(names).Collect())
	p.Printf("reversed: %v\n", names.Sorted(func(a, b string) int { return strings.Compare(b, a) }).Collect())
}

func collectStream(p *printer) {
	p.Println("-- collect")
	fruits := stream.Of("apple", "banana", "orange", "apple")
	length := func(s string) int { return len(s) }

	p.Printf("list: %v\n", stream.Collect(fruits, stream.ToList[string]()))
	p.Printf("set: %v\n", stream.Collect(fruits, stream.ToSet[string]()))

	if _, err := stream.ToMap(fruits, func(s string) string { return s }, length); err != nil {
		p.Printf("map: %v\n", err)
	}

	unique := stream.Distinct(fruits)
	m, err := stream.ToMap(unique, func(s string) string { return s }, length)
	if err != nil {
		p.Printf("map: %v\n", err)
	} else {
		p.Printf("map: %v\n", m)
	}

	p.Printf("group: %v\n", stream.Collect(unique, stream.GroupingBy(length)))
	p.Printf("partition: %v\n", stream.Collect(unique, stream.PartitioningBy(func(s string) bool { return len(s) > 5 })))
	p.Printf("joining: %s\n", stream.Collect(unique, stream.Joining(", ")))

	ordered := stream.Collect(stream.Of("kiwi", "fig", "plum", "pear", "date"), stream.GroupingByOrdered(length))
	for pair := ordered.Oldest(); pair != nil; pair = pair.Next() {
		p.Printf("ordered group %d: %v\n", pair.Key, pair.Value)
	}
}

func searchAndMatch(p *printer) {
	p.Println("-- match")
	numbers := stream.Of(1, 2, 3, 4, 5)
	p.Printf("any even: %t\n", numbers.AnyMatch(func(n int) bool { return n%2 == 0 }))
	p.Printf("all positive: %t\n", numbers.AllMatch(func(n int) bool { return n > 0 }))
	p.Printf("none negative: %t\n", numbers.NoneMatch(func(n int) bool { return n < 0 }))

	if first, ok := numbers.FindFirst(); ok {
		p.Printf("first: %d\n", first)
	}
}

func aggregateStream(p *printer) {
	p.Println("-- aggregate")
	numbers := stream.Of(1, 2, 3, 4, 5)
	p.Printf("count: %d\n", numbers.Count())

	if hi, ok := numbers.Max(cmp.Compare[int]); ok {
		p.Printf("max: %d\n", hi)
	}
	if lo, ok := numbers.Min(cmp.Compare[int]); ok {
		p.Printf("min: %d\n", lo)
	}
	if sum, ok := numbers.ReduceOpt(func(a, b int) int { return a + b }); ok {
		p.Printf("sum: %d\n", sum)
	}
	p.Printf("product: %d\n", numbers.Reduce(1, func(a, b int) int { return a * b }))

	if avg, ok := stream.Average(numbers); ok {
		p.Printf("average: %v\n", avg)
	}
}
