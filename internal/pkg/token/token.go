// Package token issues and verifies the signed bearer tokens that gate
// protected routes. Tokens are HS256 JWTs carrying only a subject (the user
// id) and an absolute expiry; nothing is stored server-side, so a token
// cannot be revoked before it expires.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrExpired reports a structurally valid, correctly signed token whose
	// expiry has passed.
	ErrExpired = errors.New("token expired")

	// ErrInvalid covers every other verification failure: bad signature,
	// wrong algorithm, malformed string, missing claims.
	ErrInvalid = errors.New("invalid token")
)

// Issuer mints and verifies tokens with a shared secret and a fixed TTL
// applied uniformly to every token.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for subject expiring ttl from now.
func (i *Issuer) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify checks signature, algorithm, and expiry, returning the subject on
// success. Expiry failures surface as ErrExpired so callers can tell a
// timed-out session from a forged token; everything else is ErrInvalid.
func (i *Issuer) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpired
		}
		return "", ErrInvalid
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalid
	}
	return claims.Subject, nil
}
