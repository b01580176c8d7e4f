// Package validation holds the registration form rules shared by the API
// server and the client workflow. All functions are pure: they never mutate
// their input and report problems as an ordered list of field errors.
package validation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// FieldError associates a human-readable message with one named input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	phonePattern = regexp.MustCompile(`^\+?\(?[0-9]{1,4}\)?[-.\s]?\(?[0-9]{1,4}\)?[-.\s]?[0-9]{1,9}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	whitespace   = regexp.MustCompile(`\s+`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	must := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	must("trimmin", trimMin)
	must("intlphone", intlPhone)
	must("basicemail", basicEmail)
	must("pwcomposition", passwordComposition)
	return v
}

func trimMin(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return utf8.RuneCountInString(strings.TrimSpace(fl.Field().String())) >= n
}

func intlPhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(whitespace.ReplaceAllString(fl.Field().String(), ""))
}

func basicEmail(fl validator.FieldLevel) bool {
	return IsEmail(fl.Field().String())
}

// IsEmail reports whether s has the loose local@domain.tld shape the
// registration forms accept.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func passwordComposition(fl validator.FieldLevel) bool {
	var lower, upper, digit bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}

type check struct {
	tag     string
	message string
}

// rule describes one form field. Checks run in order after the presence
// check and stop at the first failure unless every is set.
type rule struct {
	field  string
	label  string
	value  string
	every  bool
	checks []check
}

func run(rules []rule) []FieldError {
	var errs []FieldError
	for _, r := range rules {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, FieldError{Field: r.field, Message: r.label + " is required"})
			continue
		}
		for _, c := range r.checks {
			if validate.Var(r.value, c.tag) == nil {
				continue
			}
			errs = append(errs, FieldError{Field: r.field, Message: c.message})
			if !r.every {
				break
			}
		}
	}
	return errs
}

func passwordChecks() []check {
	return []check{
		{tag: "min=8", message: "Password must be at least 8 characters"},
		{tag: "pwcomposition", message: "Password must contain at least one uppercase letter, one lowercase letter, and one number"},
	}
}

// HasField reports whether errs contains an error for field.
func HasField(errs []FieldError, field string) bool {
	return len(ForField(errs, field)) > 0
}

// ForField returns the errors reported for field, in order.
func ForField(errs []FieldError, field string) []FieldError {
	var out []FieldError
	for _, e := range errs {
		if e.Field == field {
			out = append(out, e)
		}
	}
	return out
}
