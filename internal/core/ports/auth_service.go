package ports

import (
	"context"

	"github.com/smartspending/coach-api/internal/core/domain"
)

// LoginResult is what a successful login hands back to the transport layer.
type LoginResult struct {
	AccessToken      string
	TokenType        string
	HasFilledProfile bool
}

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}
