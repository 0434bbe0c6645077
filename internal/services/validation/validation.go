// Package validation wires go-playground/validator with the rules shared by
// the service packages
package validation

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// dateStrRegex matches the YYYY-MM-DD storage format. Only the shape is
// checked: tasks may be filed under any string of this form.
var dateStrRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// New returns a validator with the custom "datestr" rule registered
func New() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("datestr", func(fl validator.FieldLevel) bool {
		return dateStrRegex.MatchString(fl.Field().String())
	}); err != nil {
		// Only fails for an empty tag name or a nil func
		panic(err)
	}
	return v
}

// IsDateStr reports whether s has the YYYY-MM-DD shape
func IsDateStr(s string) bool {
	return dateStrRegex.MatchString(s)
}

// FirstFailure returns the struct field name of the first failed rule, or
// "" when err is not a validation error
func FirstFailure(err error) string {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		return errs[0].StructField()
	}
	return ""
}
