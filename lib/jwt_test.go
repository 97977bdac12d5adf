package lib

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret"

func TestIssueAndParseAdminToken(t *testing.T) {
	token, err := IssueAdminToken(testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, "admin", claims.Role)
	assert.NotEmpty(t, claims.Jti)
	assert.True(t, claims.Exp.After(time.Now()))
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := IssueAdminToken(testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, "other_secret")
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := IssueAdminToken(testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret)
	assert.Error(t, err)
}

func TestExtractClaims(t *testing.T) {
	token, err := IssueAdminToken(testSecret, time.Hour)
	require.NoError(t, err)

	r, _ := http.NewRequest(http.MethodGet, "/admin/orders", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	claims, err := ExtractClaims(r, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestExtractClaimsMissingHeader(t *testing.T) {
	r, _ := http.NewRequest(http.MethodGet, "/admin/orders", nil)

	_, err := ExtractClaims(r, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExtractClaimsMalformedHeader(t *testing.T) {
	r, _ := http.NewRequest(http.MethodGet, "/admin/orders", nil)
	r.Header.Set("Authorization", "Token abc")

	_, err := ExtractClaims(r, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
