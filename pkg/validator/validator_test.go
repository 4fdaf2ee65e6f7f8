package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testForm struct {
	Name  string `validate:"required,min=2,max=100"`
	Email string `validate:"required,email,max=255"`
	Notes string `validate:"omitempty,max=10"`
}

func TestValidate_OK(t *testing.T) {
	err := Validate(testForm{Name: "Priya", Email: "priya@example.com"})
	assert.NoError(t, err)
}

func TestValidate_MissingRequired(t *testing.T) {
	err := Validate(testForm{})

	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))

	fields := valErr.Fields()
	assert.Equal(t, "is required", fields["Name"])
	assert.Equal(t, "is required", fields["Email"])
}

func TestValidate_EmailShape(t *testing.T) {
	err := Validate(testForm{Name: "Priya", Email: "not-an-email"})

	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "must be a valid email address", valErr.Fields()["Email"])
}

func TestValidate_MinLength(t *testing.T) {
	err := Validate(testForm{Name: "P", Email: "priya@example.com"})

	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "must be at least 2 characters", valErr.Fields()["Name"])
}

func TestValidate_OptionalFieldOverMax(t *testing.T) {
	err := Validate(testForm{Name: "Priya", Email: "priya@example.com", Notes: "this is far too long"})

	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "must be at most 10 characters", valErr.Fields()["Notes"])
}

func TestValidate_UsesJSONFieldNames(t *testing.T) {
	type taggedForm struct {
		PostalCode string `json:"postal_code" validate:"required,min=4,max=10"`
	}

	err := Validate(taggedForm{})

	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Equal(t, "is required", valErr.Fields()["postal_code"])
}

func TestValidationError_Message(t *testing.T) {
	err := Validate(testForm{Email: "priya@example.com"})

	var valErr *ValidationError
	require.True(t, errors.As(err, &valErr))
	assert.Contains(t, valErr.Error(), "field 'Name' is required")
}
