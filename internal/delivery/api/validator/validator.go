// Package validator plugs go-playground/validator into echo.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	domainerrors "dropzone/internal/domain/errors"
	"dropzone/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator implements echo.Validator
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their json names
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: validate}
}

// Validate checks i against its struct tags. Failures come back as ErrValidationFailed
// carrying one "field: rule" entry per violation.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return errors.Wrap(err, "failed to validate request")
	}

	violations := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		violations = append(violations, describe(fieldErr))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(violations, "; "))
}

func describe(fieldErr validator.FieldError) string {
	field := strings.TrimPrefix(fieldErr.Namespace(), rootNamespace(fieldErr))
	if fieldErr.Param() == "" {
		return fmt.Sprintf("%s: %s", field, fieldErr.Tag())
	}

	return fmt.Sprintf("%s: %s=%s", field, fieldErr.Tag(), fieldErr.Param())
}

// rootNamespace is the struct name prefix validator puts in front of every namespace.
func rootNamespace(fieldErr validator.FieldError) string {
	root, _, found := strings.Cut(fieldErr.Namespace(), ".")
	if !found {
		return ""
	}

	return root + "."
}
