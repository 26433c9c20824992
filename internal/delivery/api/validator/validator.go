// Package validator adapts go-playground/validator to echo.
package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"addressbook/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var postalCodePattern = regexp.MustCompile(`^\d{5}-\d{3}$`)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator that reports fields by their JSON names and knows
// the postalcode and notblank rules.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	if err := v.RegisterValidation("postalcode", isPostalCode); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}

	return &CustomValidator{validate: v}
}

// Validate runs the struct rules declared in `validate` tags.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}

// IsPostalCode reports whether value has the NNNNN-NNN shape.
func IsPostalCode(value string) bool {
	return postalCodePattern.MatchString(value)
}

func isPostalCode(fl validator.FieldLevel) bool {
	return IsPostalCode(fl.Field().String())
}

// FieldErrors flattens validation failures into a JSON field name to message map.
// It returns nil when err does not carry validator field errors.
func FieldErrors(err error) map[string]string {
	validationErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return nil
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields[fieldErr.Field()] = describe(fieldErr)
	}

	return fields
}

func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "postalcode":
		return "must match NNNNN-NNN"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fieldErr.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fieldErr.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fieldErr.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fieldErr.Tag())
	}
}
