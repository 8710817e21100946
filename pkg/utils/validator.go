package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report fields by their wire names (json, then query)
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return field.Name
	})

	return v
}

// ValidateStruct runs the struct's validate tags
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// GetValidationErrors flattens validator errors into field -> messages.
// Errors that are not validation errors are reported under "_".
func GetValidationErrors(err error) map[string][]string {
	result := make(map[string][]string)
	if err == nil {
		return result
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		result["_"] = []string{err.Error()}
		return result
	}

	for _, fe := range validationErrors {
		field := fe.Field()
		// confirmation mismatches are reported on the confirmed field
		if fe.Tag() == "eqfield" {
			field = strings.TrimSuffix(field, "_confirmation")
		}
		result[field] = append(result[field], validationMessage(fe))
	}
	return result
}

func validationMessage(fe validator.FieldError) string {
	label := strings.ReplaceAll(fe.Field(), "_", " ")

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", label)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", label)
	case "min":
		return fmt.Sprintf("The %s must be at least %s characters.", label, fe.Param())
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s characters.", label, fe.Param())
	case "eqfield":
		return fmt.Sprintf("The %s confirmation does not match.", strings.TrimSuffix(label, " confirmation"))
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid. Allowed values: %s.", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "uuid", "uuid4":
		return fmt.Sprintf("The %s must be a valid UUID.", label)
	case "datetime":
		return fmt.Sprintf("The %s is not a valid date (expected YYYY-MM-DD).", label)
	default:
		return fmt.Sprintf("The %s field is invalid.", label)
	}
}

// GetDecodeErrors reports a JSON value of the wrong type against the field
// it was meant for. ok is false when the body is not an object at all.
func GetDecodeErrors(err error) (fields map[string][]string, ok bool) {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Field == "" {
		return nil, false
	}

	label := strings.ReplaceAll(typeErr.Field, "_", " ")
	return map[string][]string{typeErr.Field: {typeMessage(label, typeErr.Type)}}, true
}

func typeMessage(label string, t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return fmt.Sprintf("The %s field is invalid.", label)
	}

	switch t.Kind() {
	case reflect.String:
		return fmt.Sprintf("The %s must be a string.", label)
	case reflect.Bool:
		return fmt.Sprintf("The %s field must be true or false.", label)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fmt.Sprintf("The %s must be an integer.", label)
	case reflect.Slice, reflect.Array:
		return fmt.Sprintf("The %s must be an array.", label)
	default:
		return fmt.Sprintf("The %s field is invalid.", label)
	}
}
