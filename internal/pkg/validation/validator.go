package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/ssms/scholarship/internal/pkg/apperrors"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the shared validator. Field errors report the json name
// of the field rather than the Go name.
func Validator() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return instance
}

// Struct validates v. Missing required fields collapse into requiredMessage;
// any other failure is reported per field.
func Struct(v interface{}, requiredMessage string) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewValidationError(err.Error())
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" && requiredMessage != "" {
			return apperrors.NewValidationError(requiredMessage)
		}
		messages = append(messages, formatValidationError(fe))
	}
	return apperrors.NewValidationError(strings.Join(messages, "; "))
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "datetime":
		return e.Field() + " must be a date in YYYY-MM-DD format"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "gte":
		return e.Field() + " must be greater than or equal to " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
