// Package validation runs declarative field checks on request payloads and
// turns every failure into a client-facing message.
//
// Checks are declared with `validate` struct tags. Each field reports at most one
// message (its first failing rule), and messages come back in field declaration order.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "coursehub/internal/errors"
)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that names fields by their JSON key.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Validate checks i and returns an *apperrors.ValidationError listing every failing field.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, Message(fe.Field(), fe.Tag()))
	}
	return apperrors.NewValidationError(messages...)
}

// Message renders the client message for a failed rule on field.
func Message(field, rule string) string {
	switch rule {
	case "email":
		return fmt.Sprintf("Please provide a valid email address for %q", field)
	default:
		return fmt.Sprintf("Please provide a value for %q", field)
	}
}
