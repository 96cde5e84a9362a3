package ports

import (
	"context"

	"github.com/smartspending/coach-api/internal/core/domain"
)

// UserRepository defines the interface for user identity persistence.
// Implementations must enforce email uniqueness at the storage layer and
// return domain.ErrEmailTaken from Create when the constraint is violated.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
