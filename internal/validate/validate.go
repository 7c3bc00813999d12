// Package validate wraps go-playground/validator so that configuration and
// request body structs across the module report validation failures through
// a single error type.
package validate

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

// Struct validates every tagged field of value and returns the joined
// StructValidationError values for all failing fields, or nil when the
// struct passes. The name argument identifies the struct in error messages.
func Struct(name string, value interface{}) error {
	err := validate.Struct(value)
	if err == nil {
		return nil
	}

	structErrors := make([]error, 0)
	for _, err := range err.(validator.ValidationErrors) {
		structError := &StructValidationError{
			Struct:   name,
			Field:    err.Field(),
			Tag:      err.ActualTag(),
			Value:    err.Value(),
			Expected: err.Param(),
		}
		structErrors = append(structErrors, structError)
	}

	return errors.Join(structErrors...)
}
