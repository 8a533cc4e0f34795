package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "alice", true, time.Hour)
	require.NoError(t, err)

	claims, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, float64(42), claims["uid"])
	assert.Equal(t, "alice", claims["username"])
	assert.Equal(t, true, claims["is_admin"])
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	_, err := VerifyToken("not-a-token")
	assert.Error(t, err)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	orig := Secret
	defer func() { Secret = orig }()

	Secret = []byte("one-secret")
	token, err := GenerateToken(1, "bob", false, time.Hour)
	require.NoError(t, err)

	Secret = []byte("another-secret")
	_, err = VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken(1, "bob", false, -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(token)
	assert.Error(t, err)
}
