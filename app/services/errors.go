package services

import (
	"errors"
	"fmt"

	"github.com/shashiranjanraj/kashvi-products/pkg/validate"
)

// Error kinds returned by ProductService. Match them with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("product not found")
	ErrStore      = errors.New("store failure")
)

// ValidationError carries the field messages behind an ErrValidation.
type ValidationError struct {
	Fields validate.Errors
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	return fmt.Sprintf("%s: %s", ErrValidation, e.Fields.Error())
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(field, msg string) *ValidationError {
	return &ValidationError{Fields: validate.Errors{field: msg}}
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStore, err)
}
