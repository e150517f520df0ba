package ledger

import (
	"errors"
	"fmt"
)

// Sentinel errors for the ledger form pipeline. Callers match them with
// errors.Is; the UI maps each kind to its inline message.
var (
	ErrRequiredField    = errors.New("required field is empty")
	ErrInvalidFormat    = errors.New("field value has an invalid format")
	ErrNotANumber       = errors.New("value is not a number")
	ErrInvalidReference = errors.New("value does not reference a known entry")
)

// FieldError wraps a sentinel error with the field it applies to.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Err.Error())
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func fieldErr(field string, err error) *FieldError {
	return &FieldError{Field: field, Err: err}
}
