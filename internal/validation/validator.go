// Package validation provides request validation built on the
// go-playground/validator library. Failures are reported as a list of
// (field path, message) issues suitable for a 400 response body.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Issue is a single field-level validation failure.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Error aggregates field-level issues for one payload.
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.Path + ": " + issue.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// yearPattern matches a 4-digit year string.
var yearPattern = regexp.MustCompile(`^\d{4}$`)

// Validator wraps go-playground/validator with the application's custom
// rules and JSON field naming.
type Validator struct {
	v *validator.Validate
}

// New creates a validator configured for our request shapes.
func New() *Validator {
	v := validator.New()

	// Use JSON tag names in issue paths
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			return fld.Name
		}
		// Remove options like omitempty, -
		if i := strings.IndexByte(name, ','); i >= 0 {
			return name[:i]
		}
		return name
	})

	// year4: a 4-digit year string, e.g. "1982"
	_ = v.RegisterValidation("year4", func(fl validator.FieldLevel) bool {
		return yearPattern.MatchString(fl.Field().String())
	})

	// password: at least one upper, lower, digit and special character
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		var upper, lower, digit, special bool
		for _, r := range fl.Field().String() {
			switch {
			case unicode.IsUpper(r):
				upper = true
			case unicode.IsLower(r):
				lower = true
			case unicode.IsDigit(r):
				digit = true
			default:
				special = true
			}
		}
		return upper && lower && digit && special
	})

	return &Validator{v: v}
}

// Validate checks a struct against its validate tags. On failure it
// returns an *Error carrying one issue per failed field.
func (v *Validator) Validate(s any) error {
	if err := v.v.Struct(s); err != nil {
		return v.formatError(err)
	}
	return nil
}

// formatError converts validator errors into field issues.
func (v *Validator) formatError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	issues := make([]Issue, 0, len(validationErrs))
	for _, e := range validationErrs {
		issues = append(issues, Issue{
			Path:    e.Field(),
			Message: friendlyMessage(e),
		})
	}

	return &Error{Issues: issues}
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", e.Param())
		}
		return "must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", e.Param())
		}
		return "must not exceed " + e.Param()
	case "oneof":
		return "must be one of: " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "lte":
		return "must be less than or equal to " + e.Param()
	case "url":
		return "must be a valid URL"
	case "year4":
		return "must be a 4-digit year"
	case "password":
		return "must contain an uppercase letter, a lowercase letter, a digit and a special character"
	default:
		return "is invalid"
	}
}
