package lib

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testBody struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
}

func TestExtractAndValidateBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Ada","email":"ada@example.com"}`))

	body, err := ExtractAndValidateBody[testBody](r)
	require.NoError(t, err)

	assert.Equal(t, "Ada", body.Name)
	assert.Equal(t, "ada@example.com", body.Email)
}

func TestExtractAndValidateBodyMissingField(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Ada"}`))

	_, err := ExtractAndValidateBody[testBody](r)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Errors, 1)
	assert.Equal(t, "email", ve.Errors[0].Field)
	assert.Equal(t, "is required", ve.Errors[0].Message)
}

func TestExtractAndValidateBodyInvalidEmail(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Ada","email":"not-an-email"}`))

	_, err := ExtractAndValidateBody[testBody](r)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "must be a valid email address", ve.Errors[0].Message)
}

func TestExtractAndValidateBodyUnknownField(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Ada","email":"ada@example.com","extra":1}`))

	_, err := ExtractAndValidateBody[testBody](r)
	assert.Error(t, err)
}

func TestExtractAndValidateBodyMalformedJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":`))

	_, err := ExtractAndValidateBody[testBody](r)
	assert.Error(t, err)
}
