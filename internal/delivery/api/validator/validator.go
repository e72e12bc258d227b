// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	domainerrors "reportsys/internal/domain/errors"
	"reportsys/internal/util"

	"github.com/go-playground/validator/v10"
)

// CustomValidator runs struct tag validation for c.Validate.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports failures as ErrInvalidInput.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails(util.DescribeValidationError(err))
	}

	return nil
}
