// Package validation checks form values against struct-tag schemas and
// reports the outcome per field.
//
// Rules come from `validate` tags (go-playground/validator); a field's
// user-facing message comes from its `message` tag, falling back to the
// validator's own text. Fields are keyed by their json name.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// FieldError is one failed field.
type FieldError struct {
	Field   string
	Message string
}

// Result is the outcome of validating one value. The zero Result is valid.
type Result struct {
	errors []FieldError
}

func (r Result) OK() bool {
	return len(r.errors) == 0
}

// Field returns the message for field, if it failed.
func (r Result) Field(field string) (string, bool) {
	for _, fe := range r.errors {
		if fe.Field == field {
			return fe.Message, true
		}
	}
	return "", false
}

// Errors lists failed fields in struct declaration order.
func (r Result) Errors() []FieldError {
	return append([]FieldError(nil), r.errors...)
}

func (r *Result) add(field, message string) {
	if _, exists := r.Field(field); exists {
		return
	}
	r.errors = append(r.errors, FieldError{Field: field, Message: message})
}

// Struct validates value, which must be a struct or pointer to struct.
func Struct(value interface{}) Result {
	err := validate.Struct(value)
	if err == nil {
		return Result{}
	}

	var result Result
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		result.add("", err.Error())
		return result
	}

	typ := reflect.Indirect(reflect.ValueOf(value)).Type()
	for _, fe := range fieldErrs {
		message := fe.Error()
		if sf, ok := typ.FieldByName(fe.StructField()); ok {
			if tagged := sf.Tag.Get("message"); tagged != "" {
				message = tagged
			}
		}
		result.add(fe.Field(), message)
	}

	return result
}
