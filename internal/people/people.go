// Package people holds the sample person records the demos sort, filter and
// group.
package people

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/alextanhongpin/errors/cause"
	"github.com/alextanhongpin/errors/codes"
	"github.com/alextanhongpin/lambda/types/fn"
	"github.com/alextanhongpin/lambda/types/stream"
	"github.com/alextanhongpin/lambda/validator"
	"gopkg.in/yaml.v3"
)

//go:embed roster.yaml
var roster []byte

type Person struct {
	Name string `json:"name" yaml:"name" validate:"required"`
	Age  int    `json:"age" yaml:"age" validate:"gte=0,lte=150"`
	City string `json:"city,omitempty" yaml:"city,omitempty"`
}

func New(name string, age int) Person {
	return Person{Name: name, Age: age}
}

func (p Person) Validate() error {
	return validator.Struct[Person]().Check(p)
}

func (p Person) String() string {
	if p.City == "" {
		return fmt.Sprintf("Person{name='%s', age=%d}", p.Name, p.Age)
	}

	return fmt.Sprintf("Person{name='%s', age=%d, city='%s'}", p.Name, p.Age, p.City)
}

var (
	ByAge  = fn.Comparing(func(p Person) int { return p.Age })
	ByName = fn.Comparing(func(p Person) string { return p.Name })

	ByAgeThenName = ByAge.ThenComparing(ByName)
)

// Roster returns the four-person sample.
func Roster() []Person {
	people, err := Load(bytes.NewReader(roster))
	if err != nil {
		panic(err)
	}

	return people
}

// Family returns the three-person sample used for sorting.
func Family() []Person {
	return []Person{
		New("Tom", 12),
		New("John", 30),
		New("Jerry", 10),
	}
}

// Load reads a YAML list of people and validates every entry.
func Load(r io.Reader) ([]Person, error) {
	var people []Person
	if err := yaml.NewDecoder(r).Decode(&people); err != nil && !errors.Is(err, io.EOF) {
		return nil, cause.New(codes.BadRequest, "people/invalid_roster", "The roster could not be parsed").Wrap(err)
	}

	for i, p := range people {
		if err := p.Validate(); err != nil {
			return nil, cause.New(codes.BadRequest, "people/invalid_person", fmt.Sprintf("Person %d is invalid", i)).Wrap(err)
		}
	}

	return people, nil
}

// NamesIn returns the sorted names of the people living in city who are
// older than age.
func NamesIn(people []Person, city string, olderThan int) []string {
	s := stream.From(people).
		Filter(func(p Person) bool { return p.City == city }).
		Filter(func(p Person) bool { return p.Age > olderThan })

	return stream.SortedNatural(stream.Map(s, func(p Person) string { return p.Name })).Collect()
}

// AverageAgeByCity returns the mean age per city.
func AverageAgeByCity(people []Person) map[string]float64 {
	return stream.Collect(stream.From(people), stream.GroupingByWith(
		func(p Person) string { return p.City },
		stream.AveragingInt(func(p Person) int { return p.Age }),
	))
}

// Cities returns the distinct cities in name order.
func Cities(people []Person) []string {
	return slices.Sorted(maps.Keys(stream.Collect(stream.From(people), stream.GroupingBy(func(p Person) string { return p.City }))))
}
