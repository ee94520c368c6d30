// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	domainerrors "opinalocal/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a single validator instance shared across requests.
type Validator struct {
	validate *validator.Validate
}

// New creates the echo request validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks struct tags and maps failures onto the validation error.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
