package domain

import (
	"errors"
	"time"
)

// User models a registered account. PasswordHash never leaves the backend.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name,omitempty"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

var (
	// ErrEmailTaken signals a registration attempt with an address that is
	// already on file. The unique email index makes this authoritative even
	// when two registrations race past the pre-insert lookup.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The two cases must stay indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrUserNotFound  = errors.New("user not found")
	ErrTooManyLogins = errors.New("too many login attempts")
	ErrProfileExists = errors.New("profile already submitted")
)
