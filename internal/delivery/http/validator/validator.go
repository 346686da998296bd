// Package validator adapts go-playground/validator to echo's request validation hook.
package validator

import (
	"github.com/go-playground/validator/v10"

	domainerrors "tangoshop/internal/domain/errors"
)

// RequestValidator implements echo.Validator using struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a RequestValidator with the standard tag name ("validate").
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate checks the bound request struct and maps failures to the
// shared validation error so the error middleware renders a 400.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
