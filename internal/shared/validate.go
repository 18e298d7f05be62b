package shared

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct tags on v and folds every field failure into one [ErrInvalidConfig] error.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, formatValidationError(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	return Validate(c)
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	field := e.Namespace()
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must have at least " + e.Param() + " entries"
	case "gt":
		return field + " must be greater than " + e.Param()
	case "gte":
		return field + " must be at least " + e.Param()
	case "oneof":
		return field + " must be one of: " + e.Param()
	default:
		return field + " failed " + e.Tag() + " validation"
	}
}
