package ports

import (
	"context"

	"github.com/smartspending/coach-api/internal/core/domain"
)

// ProfileInput carries the onboarding form answers.
type ProfileInput struct {
	Role            string
	Income          float64
	Age             int
	FinancialGoal   string
	ExpenseCategory string
	Budgeting       string
}

type ProfileService interface {
	Save(ctx context.Context, user *domain.User, input ProfileInput) error
}
