// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound DTOs.
package validator

import (
	domainerrors "pepperoni/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *validator.Validate
}

// New builds the echo.Validator adapter.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate runs struct tag validation. Failures surface as the
// InvalidRequest application error so the error handler maps them to 400.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrInvalidRequest.WithDetails(err.Error())
	}

	return nil
}
