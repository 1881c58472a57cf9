package utils

import (
	"testing"

	"vimo/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims := &models.UserClaims{UserID: 42, Email: "an.nguyen@example.com", TokenVersion: 3}
	access, refresh, err := GenerateTokens(claims)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	for _, token := range []string{access, refresh} {
		_, parsed, err := ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, uint(42), parsed.UserID)
		assert.Equal(t, "an.nguyen@example.com", parsed.Email)
		assert.Equal(t, 3, parsed.TokenVersion)
		assert.Equal(t, "vimo-api", parsed.Issuer)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	access, _, err := GenerateTokens(&models.UserClaims{UserID: 1})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "another-secret")
	_, _, err = ParseToken(access)
	assert.Error(t, err)
}

func TestParseTokenRejectsForeignSigningMethod(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	claims := models.UserClaims{UserID: 7, Email: "an.nguyen@example.com"}

	t.Run("HS512", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, _, err = ParseToken(token)
		assert.Error(t, err, "only HS256 tokens are accepted")
	})

	t.Run("unsigned", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, _, err = ParseToken(token)
		assert.Error(t, err)
	})
}

func TestGenerateTokensRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, _, err := GenerateTokens(&models.UserClaims{UserID: 1})
	assert.Error(t, err)
}
