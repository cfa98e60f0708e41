// Package options applies default values and validation rules to option
// structs before they are used. The struct tags do the work: `default:`
// tags fill zero fields, `validate:` tags reject bad combinations.
package options

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Prepare fills zero-valued fields of an options struct from its default
// tags, then checks its validate tags. opts must be a non-nil pointer to a
// struct; the struct is modified in place.
func Prepare(opts any) error {
	if err := defaults.Set(opts); err != nil {
		return fmt.Errorf("apply defaults: %w", err)
	}
	if err := validate.Struct(opts); err != nil {
		return fmt.Errorf("validate options: %w", err)
	}
	return nil
}
