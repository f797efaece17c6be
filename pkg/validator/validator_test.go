package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "5551234567", NormalizePhone("(555) 123-4567"))
	assert.Equal(t, "5551234567", NormalizePhone("555-123-4567"))
	assert.Equal(t, "5551234567", NormalizePhone("5551234567"))
	assert.Equal(t, "", NormalizePhone(""))
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("5551234567"))
	assert.True(t, IsValidPhone("(555) 123-4567"))
	assert.True(t, IsValidPhone("555-123-4567"))

	assert.False(t, IsValidPhone("555123456"))    // 9 digits
	assert.False(t, IsValidPhone("55512345678"))  // 11 digits
	assert.False(t, IsValidPhone("555123456a"))   // letter
	assert.False(t, IsValidPhone("+15551234567")) // plus is not a stripped separator
	assert.False(t, IsValidPhone(""))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("patient@example.com"))
	assert.True(t, IsValidEmail("first.last@clinic.co.uk"))

	assert.False(t, IsValidEmail("patient@example"))
	assert.False(t, IsValidEmail("patient example@example.com"))
	assert.False(t, IsValidEmail("@example.com"))
	assert.False(t, IsValidEmail("patient@"))
	assert.False(t, IsValidEmail(""))
}

func TestValidateCustomTags(t *testing.T) {
	type form struct {
		Email string `validate:"required,basicemail"`
		Phone string `validate:"required,phone10"`
	}

	v := NewValidator()

	assert.NoError(t, v.Validate(&form{Email: "patient@example.com", Phone: "(555) 123-4567"}))

	err := v.Validate(&form{Email: "not-an-email", Phone: "12345"})
	assert.Error(t, err)

	fieldErrors := v.FormatValidationErrors(err)
	assert.Equal(t, "Email must be a valid email address", fieldErrors["Email"])
	assert.Equal(t, "Phone must be a 10-digit phone number", fieldErrors["Phone"])
}

func TestFormatValidationErrorsRequired(t *testing.T) {
	type form struct {
		Name string `validate:"required"`
		Code string `validate:"required,len=6,numeric"`
	}

	v := NewValidator()

	err := v.Validate(&form{})
	assert.Error(t, err)

	fieldErrors := v.FormatValidationErrors(err)
	assert.Equal(t, "Name is required", fieldErrors["Name"])
	assert.Equal(t, "Code is required", fieldErrors["Code"])

	err = v.Validate(&form{Name: "ok", Code: "12ab"})
	assert.Error(t, err)

	fieldErrors = v.FormatValidationErrors(err)
	assert.Equal(t, "Code must be exactly 6 characters", fieldErrors["Code"])
}
