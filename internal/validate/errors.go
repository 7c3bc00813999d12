package validate

import (
	"fmt"
)

// A StructValidationError describes a single struct field that failed one
// of its validation tags.
type StructValidationError struct {
	Struct   string
	Field    string
	Tag      string
	Value    interface{}
	Expected string
}

func (e *StructValidationError) Error() string {
	return fmt.Sprintf(
		`failed validation for "%s.%s" field's "%s:%s" tag, provided value %v`,
		e.Struct,
		e.Field,
		e.Tag,
		e.Expected,
		e.Value,
	)
}
