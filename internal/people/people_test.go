package people_test

import (
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/alextanhongpin/errors/cause"
	"github.com/alextanhongpin/errors/codes"
	"github.com/alextanhongpin/lambda/internal/people"
	"github.com/alextanhongpin/lambda/test/testdump"
	"github.com/alextanhongpin/lambda/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoster(t *testing.T) {
	roster := people.Roster()
	require.Len(t, roster, 4)
	assert.Equal(t, people.Person{Name: "Alice", Age: 25, City: "New York"}, roster[0])
	assert.Equal(t, people.Person{Name: "Diana", Age: 22, City: "Paris"}, roster[3])
}

func TestNamesIn(t *testing.T) {
	roster := people.Roster()
	assert.Equal(t, []string{"Charlie"}, people.NamesIn(roster, "New York", 25))
	assert.Equal(t, []string{"Alice", "Charlie"}, people.NamesIn(roster, "New York", 20))
	assert.Equal(t, []string{}, people.NamesIn(roster, "Tokyo", 0))
}

func TestAverageAgeByCity(t *testing.T) {
	got := people.AverageAgeByCity(people.Roster())
	assert.Equal(t, map[string]float64{
		"New York": 26.5,
		"London":   30,
		"Paris":    22,
	}, got)
	assert.Equal(t, []string{"London", "New York", "Paris"}, people.Cities(people.Roster()))
}

func TestSort(t *testing.T) {
	names := func(ps []people.Person) []string {
		res := make([]string, len(ps))
		for i, p := range ps {
			res[i] = p.Name
		}
		return res
	}

	tests := []struct {
		name string
		by   func(a, b people.Person) int
		want []string
	}{
		{"age", people.ByAge, []string{"Jerry", "Tom", "John"}},
		{"name", people.ByName, []string{"Jerry", "John", "Tom"}},
		{"age then name", people.ByAgeThenName, []string{"Jerry", "Tom", "John"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			family := people.Family()
			slices.SortStableFunc(family, tc.by)
			assert.Equal(t, tc.want, names(family))
		})
	}

	t.Run("ties broken by name", func(t *testing.T) {
		ps := []people.Person{people.New("Zed", 30), people.New("Amy", 30), people.New("Kim", 1)}
		people.ByAgeThenName.Sort(ps)
		assert.Equal(t, []string{"Kim", "Amy", "Zed"}, names(ps))
	})
}

func TestString(t *testing.T) {
	assert.Equal(t, "Person{name='Tom', age=25}", people.New("Tom", 25).String())
	assert.Equal(t, "Person{name='Bob', age=30, city='London'}", people.Person{Name: "Bob", Age: 30, City: "London"}.String())
}

func TestLoad(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		ps, err := people.Load(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, ps)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := people.Load(strings.NewReader("name: ["))

		var c *cause.Error
		require.ErrorAs(t, err, &c)
		assert.Equal(t, codes.BadRequest, c.Code)
		assert.Equal(t, "people/invalid_roster", c.Name)
	})

	t.Run("invalid person", func(t *testing.T) {
		_, err := people.Load(strings.NewReader("- age: -1\n"))

		var c *cause.Error
		require.ErrorAs(t, err, &c)
		assert.Equal(t, "people/invalid_person", c.Name)

		var ve validator.Errors
		require.True(t, errors.As(err, &ve))
		assert.Equal(t, validator.Errors{
			"name": "required",
			"age":  "must be at least 0",
		}, ve)
	})
}

func TestRosterSnapshot(t *testing.T) {
	rw := testdump.NewFile(filepath.Join("testdata", "roster.yaml"))
	require.NoError(t, testdump.YAML(rw, people.Roster(), nil))
}
