// Package validator plugs go-playground/validator into echo.
package validator

import (
	"regexp"
	"strconv"

	domainerrors "style/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._]+$`)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New registers the custom tags used by request DTOs.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// username: letters, digits, dots and underscores
	_ = validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})

	// maxbytes=N: encoded length in bytes, not runes
	_ = validate.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}

		return len(fl.Field().String()) <= limit
	})

	return &Validator{validate: validate}
}

// Validate returns ErrValidationFailed naming the offending fields.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	details := ""
	for i, fieldErr := range validationErrs {
		if i > 0 {
			details += "; "
		}
		details += fieldErr.Field() + " failed " + fieldErr.Tag()
	}

	return domainerrors.ErrValidationFailed.WithDetails(details)
}
