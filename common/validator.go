package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"smartcity-portal/validation"

	"github.com/go-playground/validator/v10"
)

var validate = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("basicemail", func(fl validator.FieldLevel) bool {
		return validation.IsEmail(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidateAndDecode decodes the JSON request body into payload and applies its
// `validate` struct tags. Field errors use the payload's json names.
func ValidateAndDecode(r *http.Request, payload interface{}) *AppError {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		return NewAppError(http.StatusBadRequest, "Invalid request body", err)
	}

	if err := validate.Struct(payload); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return NewAppError(http.StatusBadRequest, "Invalid request body", err)
		}
		fieldErrors := make([]validation.FieldError, 0, len(validationErrors))
		for _, fe := range validationErrors {
			fieldErrors = append(fieldErrors, validation.FieldError{
				Field:   fe.Field(),
				Message: fmt.Sprintf("%s failed the '%s' check", fe.Field(), fe.Tag()),
			})
		}
		return NewValidationError(fieldErrors)
	}

	return nil
}
