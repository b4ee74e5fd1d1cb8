// Package validate wraps go-playground/validator with human-readable messages
// shared by the services and the HTTP layer.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/lumenstudio/studio/internal/core/domain"
)

var std = validator.New()

// Struct validates i against its `validate` tags. Field failures are returned
// as a *domain.ValidationError.
func Struct(i any) error {
	err := std.Struct(i)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fieldError(fe))
		}
		return domain.NewValidationError(msgs...)
	}
	return err
}

// Var validates a single value against tag, naming it field in the message.
func Var(field string, v any, tag string) error {
	err := std.Var(v, tag)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return domain.NewValidationError(message(field, ve[0].Tag(), ve[0].Param()))
	}
	return err
}

// Echo adapts the package to echo.Validator so handlers can call c.Validate.
type Echo struct{}

func (Echo) Validate(i any) error {
	return Struct(i)
}

func fieldError(fe validator.FieldError) string {
	return message(fe.Field(), fe.Tag(), fe.Param())
}

func message(field, tag, param string) string {
	field = strings.ToLower(field)
	switch tag {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, tag)
	}
}
