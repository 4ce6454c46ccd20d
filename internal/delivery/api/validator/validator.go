// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// RequestValidator implements echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

// New returns a validator that reports fields by their JSON names.
func New() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("param"), ",", 2)[0]
		}

		return name
	})

	return &RequestValidator{validate: v}
}

// Validate validates a bound request struct.
func (rv *RequestValidator) Validate(i any) error {
	if err := rv.validate.Struct(i); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return errors.New(FormatErrors(validationErrs))
		}

		return errors.WithStack(err)
	}

	return nil
}

// FormatErrors joins field errors into one readable message.
func FormatErrors(errs validator.ValidationErrors) string {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Field()+": "+message(e))
	}

	return strings.Join(messages, "; ")
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of " + e.Param()
	case "min":
		return "must be at least " + e.Param()
	case "max":
		return "must be at most " + e.Param()
	case "gt":
		return "must be greater than " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	case "latitude":
		return "must be a valid latitude"
	case "longitude":
		return "must be a valid longitude"
	default:
		return "failed " + e.Tag() + " validation"
	}
}
