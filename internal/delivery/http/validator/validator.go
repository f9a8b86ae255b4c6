// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "taskboard/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// CustomValidator wraps the playground validator for echo.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates the request validator.
func New() *CustomValidator {
	return &CustomValidator{validate: playground.New()}
}

// Validate checks struct tags and translates failures into the application
// error taxonomy so the error middleware renders a 400.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
