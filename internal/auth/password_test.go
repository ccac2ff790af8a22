package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	digest, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", digest)

	require.True(t, VerifyPassword("secret123", digest))
	require.False(t, VerifyPassword("secret124", digest))
	require.False(t, VerifyPassword("", digest))
}

func TestHashesAreSalted(t *testing.T) {
	first, err := HashPassword("secret123")
	require.NoError(t, err)

	second, err := HashPassword("secret123")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}
