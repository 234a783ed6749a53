package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Str0ng@Password")
	require.NoError(t, err)
	assert.NotEqual(t, "Str0ng@Password", hash)

	assert.True(t, CheckPassword(hash, "Str0ng@Password"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}

func TestHashPasswordProducesUniqueSalts(t *testing.T) {
	first, err := HashPassword("Str0ng@Password")
	require.NoError(t, err)
	second, err := HashPassword("Str0ng@Password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword(first, "Str0ng@Password"))
	assert.True(t, CheckPassword(second, "Str0ng@Password"))
}
