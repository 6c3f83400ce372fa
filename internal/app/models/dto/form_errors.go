package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/yigit/sportsmeet/internal/pkg/apperrors"
)

// NonFieldKey holds errors that do not belong to a single input
const NonFieldKey = "__all__"

// FormErrors maps a form input name to the message shown next to it
type FormErrors map[string]string

// Add records msg for field unless the field already has one
func (fe FormErrors) Add(field, msg string) {
	if _, exists := fe[field]; !exists {
		fe[field] = msg
	}
}

// HasErrors reports whether any message was recorded
func (fe FormErrors) HasErrors() bool {
	return len(fe) > 0
}

// NewFormErrors translates a binding or service error into per-field messages.
// form must be the struct (or pointer to it) that was bound so input names can be resolved.
func NewFormErrors(err error, form interface{}) FormErrors {
	errs := FormErrors{}
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			errs.Add(inputName(form, fe.StructField()), formatFieldError(fe))
		}
		return errs
	}

	if field, msg, ok := apperrors.FieldOf(err); ok {
		errs.Add(field, msg)
		return errs
	}

	errs.Add(NonFieldKey, "Please correct the errors below.")
	return errs
}

// inputName returns the form tag of the named struct field
func inputName(form interface{}, structField string) string {
	t := reflect.TypeOf(form)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return strings.ToLower(structField)
	}
	if f, ok := t.FieldByName(structField); ok {
		if tag := strings.Split(f.Tag.Get("form"), ",")[0]; tag != "" && tag != "-" {
			return tag
		}
	}
	return strings.ToLower(structField)
}

// formatFieldError creates a human-readable validation error message
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required."
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this value has at most %s characters.", e.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", e.Param())
	case "min":
		if e.Kind() == reflect.String {
			if e.StructField() == "Password1" {
				return fmt.Sprintf("This password is too short. It must contain at least %s characters.", e.Param())
			}
			return fmt.Sprintf("Ensure this value has at least %s characters.", e.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", e.Param())
	case "email":
		return "Enter a valid email address."
	case "sport", "oneof":
		return "Select a valid choice."
	case "username":
		return "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	case "passwordbytes":
		return "This password is too long. It must contain at most 72 bytes."
	case "notnumeric":
		return "This password is entirely numeric."
	case "eqfield":
		return "The two password fields didn't match."
	case "phone":
		return "Enter a valid phone number."
	case "datetime":
		if strings.Contains(e.Param(), "15:04") {
			return "Enter a valid time."
		}
		return "Enter a valid date."
	default:
		return "Enter a valid value."
	}
}
