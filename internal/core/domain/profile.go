package domain

import "time"

// Profile holds the one-time onboarding answers for a user. A user has at
// most one profile; once written it is never updated through this API.
type Profile struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Role            string    `json:"role"`
	Income          float64   `json:"income"`
	Age             int       `json:"age"`
	FinancialGoal   string    `json:"financial_goal"`
	ExpenseCategory string    `json:"expense_category"`
	Budgeting       string    `json:"budgeting"`
	CreatedAt       time.Time `json:"created_at"`
}
