// Package validator plugs go-playground/validator into Echo.
package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// profileNamePattern accepts letters, spaces and dashes only.
var profileNamePattern = regexp.MustCompile(`^[A-Za-zÀ-ÿ -]+$`)

// CustomValidator wraps the go-playground validator for Echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New builds the validator with the custom rules the handlers rely on.
func New() *CustomValidator {
	validate := validator.New()

	// Intentionally ignoring the error: RegisterValidation only fails on an
	// empty tag name.
	_ = validate.RegisterValidation("profilename", func(fl validator.FieldLevel) bool {
		return profileNamePattern.MatchString(fl.Field().String())
	})

	return &CustomValidator{validate: validate}
}

// Validate implements echo.Validator.
func (v *CustomValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
