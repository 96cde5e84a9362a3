package service

import (
	"context"
	"fmt"

	"github.com/smartspending/coach-api/internal/core/domain"
	"github.com/smartspending/coach-api/internal/core/ports"
)

// ProfileService persists the one-time onboarding form.
type ProfileService struct {
	profiles ports.ProfileRepository
}

func NewProfileService(profiles ports.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// Save writes the profile for user. Onboarding is one-shot: a second
// submission fails with domain.ErrProfileExists and leaves the stored row
// untouched. The repository's uniqueness guarantee on user id covers the
// case where two first submissions race past the existence check.
func (s *ProfileService) Save(ctx context.Context, user *domain.User, input ports.ProfileInput) error {
	exists, err := s.profiles.ExistsForUser(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("check profile: %w", err)
	}
	if exists {
		return domain.ErrProfileExists
	}

	return s.profiles.Create(ctx, &domain.Profile{
		UserID:          user.ID,
		Role:            input.Role,
		Income:          input.Income,
		Age:             input.Age,
		FinancialGoal:   input.FinancialGoal,
		ExpenseCategory: input.ExpenseCategory,
		Budgeting:       input.Budgeting,
	})
}
