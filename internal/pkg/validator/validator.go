// Package validator provides a thin wrapper around the go-playground/validator library,
// enabling declarative validation of request structs with standardized error formatting.
//
// Field names in error messages follow the `json` tag of the field, so messages match
// the names callers used on the wire. The package is initialized automatically and safe
// for concurrent use.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is returned as the first error in a multi-error chain when validation fails.
var ErrValidationFailed = errors.New("struct validation failed")

// validator is a singleton instance of the go-playground validator,
// initialized automatically on package load.
var validator *gvalidator.Validate

// errStringFormat defines the template used to describe individual validation errors.
//
// Example: "'units': value '0' does not meet the requirements for the 'gt' validation"
const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
	validator.RegisterTagNameFunc(jsonFieldName)
}

// jsonFieldName reports the wire name of a struct field, falling back to the Go name
// when the field has no json tag.
func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

// formatError transforms a raw validator error into a structured, human-readable multi-error chain.
//
// If the input is a set of validation errors, it returns a combined error with ErrValidationFailed as the root,
// followed by a formatted message for each field error. Otherwise, the original error is returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat,
			validationErr.Field(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}

	return errors.Join(errs...)
}

// Validate checks if the given struct satisfies its validation tags.
//
// It returns nil if all fields pass validation. Otherwise, it returns a combined error that includes
// ErrValidationFailed and one formatted message for each field that failed validation.
//
//	type MintRequest struct {
//	    Wallet string `json:"wallet" validate:"required,eth_addr"`
//	}
//
//	if err := validator.Validate(req); errors.Is(err, validator.ErrValidationFailed) {
//	    // reject the request
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}
