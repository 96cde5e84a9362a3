package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartspending/coach-api/internal/core/domain"
	"github.com/smartspending/coach-api/internal/core/ports"
	"github.com/smartspending/coach-api/internal/pkg/password"
	"github.com/smartspending/coach-api/internal/pkg/token"
)

// AuthService implements registration and login.
type AuthService struct {
	users    ports.UserRepository
	profiles ports.ProfileRepository
	tokens   *token.Issuer
	throttle ports.LoginThrottle
}

// NewAuthService wires the auth flows. throttle may be nil, in which case
// failed logins are not rate-limited.
func NewAuthService(users ports.UserRepository, profiles ports.ProfileRepository, tokens *token.Issuer, throttle ports.LoginThrottle) *AuthService {
	return &AuthService{users: users, profiles: profiles, tokens: tokens, throttle: throttle}
}

// Register creates a new account. The pre-insert lookup gives the common
// duplicate case a fast answer, but the storage-level unique index is what
// actually guarantees email uniqueness: a duplicate-key error from Create is
// reported the same way.
func (s *AuthService) Register(ctx context.Context, name, email, pass string) (*domain.User, error) {
	if email == "" || pass == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("check existing email: %w", err)
	}

	digest, err := password.Hash(pass)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: digest,
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login authenticates by email and password and issues a bearer token. An
// unknown email and a wrong password produce the exact same error so the
// response cannot be used to probe which addresses are registered.
func (s *AuthService) Login(ctx context.Context, email, pass string) (*ports.LoginResult, error) {
	if email == "" || pass == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		// Fail open on throttle backend errors.
		if limited, err := s.throttle.TooMany(ctx, email); err == nil && limited {
			return nil, domain.ErrTooManyLogins
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, email)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.Verify(pass, user.PasswordHash); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			s.recordFailure(ctx, email)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	signed, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	hasProfile, err := s.profiles.ExistsForUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("check profile: %w", err)
	}

	if s.throttle != nil {
		_ = s.throttle.Reset(ctx, email)
	}

	return &ports.LoginResult{
		AccessToken:      signed,
		TokenType:        "bearer",
		HasFilledProfile: hasProfile,
	}, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.throttle != nil {
		_ = s.throttle.RecordFailure(ctx, email)
	}
}
