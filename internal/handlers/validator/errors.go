package validator

import (
	"fmt"
	"strings"
)

type ErrInvalidFields struct {
	error
	Fields []string
}

func NewErrInvalidFields(fields []string, cause error) *ErrInvalidFields {
	return &ErrInvalidFields{
		error:  fmt.Errorf("invalid fields %s: %w", strings.Join(fields, ", "), cause),
		Fields: fields,
	}
}

func (e *ErrInvalidFields) Unwrap() error {
	return e.error
}
