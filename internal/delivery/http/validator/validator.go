// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can validate bound request structs.
package validator

import (
	domainerrors "connect/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator.Validate instance for echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator ready to be assigned to echo.Echo.Validator.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags on the bound request and converts failures
// into the application's validation error so the error handler maps them
// to a 400 response.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
