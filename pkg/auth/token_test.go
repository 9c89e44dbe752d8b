package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify_RoundTrip(t *testing.T) {
	v := NewVerifier("test-secret")
	token := SignToken("test-secret", Claims{Subject: "user-1", Role: "admin"})

	claims, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.True(t, claims.IsAdmin())
}

func TestVerify_WrongSecret(t *testing.T) {
	v := NewVerifier("right-secret")
	token := SignToken("wrong-secret", Claims{Subject: "user-1"})

	_, err := v.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	v := NewVerifier("s")
	token := SignToken("s", Claims{Subject: "user-1", Exp: time.Now().Add(-time.Minute).Unix()})

	_, err := v.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_Malformed(t *testing.T) {
	v := NewVerifier("s")
	for _, token := range []string{"", "abc", "a.b", "a.b.c.d"} {
		_, err := v.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}

func TestVerify_MissingSubject(t *testing.T) {
	v := NewVerifier("s")
	token := SignToken("s", Claims{Role: "member"})

	_, err := v.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
