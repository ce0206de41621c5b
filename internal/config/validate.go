package config

import (
	"aggregat4/cspenv/internal/domain"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
)

var check = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// Report fields by their configuration key rather than the Go field name.
	check.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("koanf"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

var messages = map[string]string{
	"required":         "is required",
	"http_url":         "must be an absolute http or https URL",
	"hostname_rfc1123": "must be a valid hostname",
	"alphanum":         "must only contain letters and digits",
}

// FieldError is a single violation, named by the dotted configuration key.
type FieldError struct {
	Key     string
	Message string
	Value   string
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s %s", e.Key, e.Message)
	}
	return fmt.Sprintf("%s %s, got %q", e.Key, e.Message, e.Value)
}

// Validate checks that every field of the record is present and well formed. All
// violations are returned together; use multierr.Errors to list them.
func Validate(e domain.Environment) error {
	err := check.Struct(e)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("error validating configuration: %w", err)
	}
	var result error
	for _, fe := range validationErrors {
		result = multierr.Append(result, toFieldError(fe))
	}
	return result
}

func toFieldError(fe validator.FieldError) *FieldError {
	key := fe.Namespace()
	// Namespace starts with the struct type name.
	if _, rest, ok := strings.Cut(key, "."); ok {
		key = rest
	}
	message, ok := messages[fe.Tag()]
	if !ok {
		message = "failed the " + fe.Tag() + " check"
	}
	value := ""
	if s, ok := fe.Value().(string); ok {
		value = s
	}
	return &FieldError{Key: key, Message: message, Value: value}
}
