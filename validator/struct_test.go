package validator_test

import (
	"testing"

	"github.com/alextanhongpin/lambda/validator"
	"github.com/stretchr/testify/assert"
)

type member struct {
	Name  string `json:"name" validate:"required"`
	Age   int    `json:"age" validate:"gte=0,lte=150"`
	Level string `yaml:"level" validate:"omitempty,oneof=gold silver"`
	Note  string
}

func TestStruct(t *testing.T) {
	check := validator.Struct[member]()

	t.Run("valid", func(t *testing.T) {
		assert.Nil(t, check(member{Name: "Alice", Age: 25}))
	})

	t.Run("invalid", func(t *testing.T) {
		err := check(member{Age: -1, Level: "bronze"})

		var ve validator.Errors
		assert.ErrorAs(t, err, &ve)
		assert.Equal(t, validator.Errors{
			"name":  "required",
			"age":   "must be at least 0",
			"level": "must be one of gold, silver",
		}, ve)
	})

	t.Run("pointer", func(t *testing.T) {
		err := validator.Struct[*member]()(&member{Name: "Bob", Age: 151})
		assert.EqualError(t, err, "age: must be at most 150")
	})
}
