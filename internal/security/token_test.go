package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("0123456789abcdef0123456789abcdef")

	token, err := m.GenerateSessionToken("sess-1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	sessionID, err := m.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", sessionID)
}

func TestTokenExpired(t *testing.T) {
	m := NewTokenManager("0123456789abcdef0123456789abcdef")

	token, err := m.GenerateSessionToken("sess-1", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = m.ValidateSessionToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenWrongSecret(t *testing.T) {
	signer := NewTokenManager("0123456789abcdef0123456789abcdef")
	verifier := NewTokenManager("fedcba9876543210fedcba9876543210")

	token, err := signer.GenerateSessionToken("sess-1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = verifier.ValidateSessionToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	m := NewTokenManager("0123456789abcdef0123456789abcdef")

	_, err := m.ValidateSessionToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.ValidateSessionToken("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
