package utils

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	if Validate != nil {
		return
	}
	Validate = validator.New(validator.WithRequiredStructEnabled())
}

// ValidationMessage returns the user-facing message of the first field that
// failed validation. Messages live in the `msg` tag next to the rule.
func ValidationMessage(err error, req any, fallback string) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fallback
	}

	t := reflect.TypeOf(req)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return fallback
	}

	field, ok := t.FieldByName(validationErrors[0].StructField())
	if !ok {
		return fallback
	}
	if msg := field.Tag.Get("msg"); msg != "" {
		return msg
	}
	return fallback
}
