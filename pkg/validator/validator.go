package validator

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	phoneDigitsPattern = regexp.MustCompile(`^\d{10}$`)
	basicEmailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneSeparators    = strings.NewReplacer("-", "", "(", "", ")", "", " ", "")
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// phone10: exactly 10 digits after stripping -, (, ) and spaces
	v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	})

	// basicemail: local@domain with a dot in the domain part
	v.RegisterValidation("basicemail", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "basicemail":
				errors[field] = field + " must be a valid email address"
			case "phone10":
				errors[field] = field + " must be a 10-digit phone number"
			case "len":
				errors[field] = field + " must be exactly " + e.Param() + " characters"
			case "numeric":
				errors[field] = field + " must contain only digits"
			case "url":
				errors[field] = field + " must be a valid URL"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}

// NormalizePhone strips the accepted separator characters, leaving the
// bare digit string used for storage and verification keys.
func NormalizePhone(phone string) string {
	return phoneSeparators.Replace(phone)
}

// IsValidPhone accepts exactly 10 digits after separator stripping
func IsValidPhone(phone string) bool {
	return phoneDigitsPattern.MatchString(NormalizePhone(phone))
}

// IsValidEmail accepts a basic local@domain.tld shape
func IsValidEmail(email string) bool {
	return basicEmailPattern.MatchString(email)
}
