// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	validatorlib "github.com/go-playground/validator/v10"
)

// echoValidator wraps a single validator instance; the instance caches
// struct metadata and is safe for concurrent use.
type echoValidator struct {
	validate *validatorlib.Validate
}

// New creates the Echo request validator.
func New() *echoValidator {
	return &echoValidator{
		validate: validatorlib.New(validatorlib.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *echoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
