package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	signed, err := issuer.Issue("42")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	subject, err := issuer.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "42", subject)
}

func TestVerifyExpired(t *testing.T) {
	// A negative TTL bypasses NewIssuer's default, producing an
	// already-expired token.
	issuer := &Issuer{secret: []byte("secret"), ttl: -time.Minute}

	signed, err := issuer.Issue("42")
	require.NoError(t, err)

	_, err = issuer.Verify(signed)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	signed, err := NewIssuer("secret-a", time.Hour).Issue("42")
	require.NoError(t, err)

	_, err = NewIssuer("secret-b", time.Hour).Verify(signed)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyWrongAlgorithm(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewIssuer("secret", time.Hour).Verify(signed)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyGarbage(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	for _, tokenString := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := issuer.Verify(tokenString)
		assert.ErrorIs(t, err, ErrInvalid, "token %q", tokenString)
	}
}

func TestVerifyMissingExpiry(t *testing.T) {
	// A correctly signed token without an exp claim would otherwise verify
	// forever; the verifier must insist on one.
	claims := jwt.RegisteredClaims{Subject: "42"}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewIssuer("secret", time.Hour).Verify(signed)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestVerifyMissingSubject(t *testing.T) {
	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewIssuer("secret", time.Hour).Verify(signed)
	assert.ErrorIs(t, err, ErrInvalid)
}
