// Package password wraps bcrypt hashing for stored credentials.
//
// Every call to Hash produces a distinct digest for the same input because
// bcrypt embeds a fresh random salt, and Verify compares in constant time
// relative to the mismatch position.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMismatch reports that the plaintext does not match the digest.
var ErrMismatch = errors.New("password mismatch")

// Hash derives a salted bcrypt digest from plaintext.
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// Verify checks plaintext against a stored digest. It returns ErrMismatch on
// a wrong password and a distinct error when the stored digest itself is
// malformed; callers must treat the latter as a server-side fault, not a
// failed login.
func Verify(plaintext, digest string) error {
	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrMismatch
	default:
		return fmt.Errorf("malformed password digest: %w", err)
	}
}
