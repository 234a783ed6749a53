package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWTToken(t *testing.T) {
	token, err := GenerateJWTToken("64f1b2c3d4e5f60718293a4b", "akshay@example.com", "Akshay")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWTToken(token)
	require.NoError(t, err)
	assert.Equal(t, "64f1b2c3d4e5f60718293a4b", claims.UserID)
	assert.Equal(t, "akshay@example.com", claims.EmailID)
	assert.Equal(t, "Akshay", claims.FirstName)
	assert.Equal(t, "codemate-backend", claims.Issuer)
}

func TestGenerateJWTTokenRejectsEmptyFields(t *testing.T) {
	_, err := GenerateJWTToken("", "akshay@example.com", "Akshay")
	assert.Error(t, err)

	_, err = GenerateJWTToken("64f1b2c3d4e5f60718293a4b", "", "Akshay")
	assert.Error(t, err)
}

func TestValidateJWTTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateJWTToken("")
	assert.Error(t, err)

	_, err = ValidateJWTToken("not.a.token")
	assert.Error(t, err)
}

func TestTokenRemainingValidity(t *testing.T) {
	token, err := GenerateJWTToken("64f1b2c3d4e5f60718293a4b", "akshay@example.com", "Akshay")
	require.NoError(t, err)

	claims, err := ValidateJWTToken(token)
	require.NoError(t, err)

	remaining := TokenRemainingValidity(claims)
	assert.Greater(t, remaining, 23*time.Hour)
	assert.LessOrEqual(t, remaining, 24*time.Hour)
}

func TestTokenRemainingValidityExpired(t *testing.T) {
	claims := &JWTClaims{}
	assert.Equal(t, time.Duration(0), TokenRemainingValidity(claims))
}
