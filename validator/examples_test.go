package validator_test

import (
	"fmt"

	"github.com/alextanhongpin/lambda/validator"
)

func ExampleValidator_And() {
	notEmpty := validator.Validator[string](func(s string) bool { return s != "" })
	atLeast5 := validator.Validator[string](func(s string) bool { return len(s) >= 5 })

	combined := notEmpty.And(atLeast5)

	fmt.Println(combined.Validate("Hello"))
	fmt.Println(combined.Validate("Hi"))
	// Output:
	// true
	// false
}
