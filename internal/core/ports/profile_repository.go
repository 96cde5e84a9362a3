package ports

import (
	"context"

	"github.com/smartspending/coach-api/internal/core/domain"
)

// ProfileRepository persists the one-shot onboarding profile. Create must
// return domain.ErrProfileExists when a profile for the user already exists,
// backed by a storage-level uniqueness guarantee on the user id.
type ProfileRepository interface {
	ExistsForUser(ctx context.Context, userID string) (bool, error)
	Create(ctx context.Context, profile *domain.Profile) error
}
