package service

import (
	"fmt"
)

type ErrInvalidInput struct {
	error
}

func NewErrInvalidInput(cause error) *ErrInvalidInput {
	return &ErrInvalidInput{fmt.Errorf("invalid input: %w", cause)}
}

func (e *ErrInvalidInput) Unwrap() error {
	return e.error
}

type ErrAccessLogUnavailable struct {
	error
}

func NewErrAccessLogUnavailable(cause error) *ErrAccessLogUnavailable {
	return &ErrAccessLogUnavailable{fmt.Errorf("access log unavailable: %w", cause)}
}

func (e *ErrAccessLogUnavailable) Unwrap() error {
	return e.error
}
