package services

import (
	"errors"
	"fmt"
)

// ErrEventNotFound signals that no record exists at the requested identifier.
var ErrEventNotFound = errors.New("event not found")

// ErrInvalidDateFormat signals a timestamp value that does not match the
// accepted layout.
var ErrInvalidDateFormat = errors.New("invalid date format")

// InvalidFieldValueError names the patch field whose value could not be
// coerced to the field's type.
type InvalidFieldValueError struct {
	Field string
}

func (e *InvalidFieldValueError) Error() string {
	return fmt.Sprintf("invalid value for field %q", e.Field)
}
