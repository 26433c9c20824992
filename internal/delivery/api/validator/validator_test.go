package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type personForm struct {
	Name string `json:"name" validate:"required,notblank"`
}

type numberForm struct {
	Number int `json:"number" validate:"gt=0,lte=2147483647"`
}

type addressForm struct {
	PostalCode string `json:"postal_code" validate:"required,postalcode"`
	Number     int    `json:"number" validate:"required,gt=0"`
	Ignored    string `json:"-" validate:"required"`
}

func TestIsPostalCode(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"12345-678", true},
		{"00000-000", true},
		{"12345678", false},
		{"1234-5678", false},
		{"12345-67", false},
		{"abcde-fgh", false},
		{" 12345-678", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPostalCode(tt.value))
		})
	}
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	err := New().Validate(&addressForm{PostalCode: "123", Ignored: "x"})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, map[string]string{
		"postal_code": "must match NNNNN-NNN",
		"number":      "is required",
	}, fields)
}

func TestValidate_Passes(t *testing.T) {
	assert.NoError(t, New().Validate(&addressForm{PostalCode: "12345-678", Number: 3, Ignored: "x"}))
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}

func TestValidate_NotBlank(t *testing.T) {
	v := New()

	for _, name := range []string{" ", "   ", "\t", "\n\r "} {
		err := v.Validate(&personForm{Name: name})
		require.Error(t, err, "name %q", name)
		assert.Equal(t, map[string]string{"name": "must not be blank"}, FieldErrors(err))
	}

	assert.NoError(t, v.Validate(&personForm{Name: " Ana "}))
}

func TestValidate_NumberUpperBound(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&numberForm{Number: 2147483647}))

	err := v.Validate(&numberForm{Number: 2147483648})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"number": "must be at most 2147483647"}, FieldErrors(err))
}
