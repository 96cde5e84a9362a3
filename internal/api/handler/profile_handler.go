package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartspending/coach-api/internal/api/metrics"
	"github.com/smartspending/coach-api/internal/api/middleware"
	"github.com/smartspending/coach-api/internal/core/domain"
	"github.com/smartspending/coach-api/internal/core/ports"
)

type ProfileHandler struct {
	profileService ports.ProfileService
}

func NewProfileHandler(profileService ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// profileRequest mirrors the onboarding form. Numeric fields are pointers so
// a missing key is distinguishable from a legitimate zero.
type profileRequest struct {
	Role            string   `json:"role" validate:"required,oneof=student employee"`
	Income          *float64 `json:"income" validate:"required,gte=0"`
	Age             *int     `json:"age" validate:"required,gte=0"`
	FinancialGoal   string   `json:"financial_goal" validate:"required"`
	ExpenseCategory string   `json:"expense_category" validate:"required"`
	Budgeting       string   `json:"budgeting" validate:"required"`
}

// Save stores the one-time onboarding profile for the logged-in user.
//
// @Summary      Save onboarding profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      profileRequest  true  "Onboarding answers"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /user/profile [post]
func (h *ProfileHandler) Save(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	err = h.profileService.Save(c.Request().Context(), user, ports.ProfileInput{
		Role:            req.Role,
		Income:          *req.Income,
		Age:             *req.Age,
		FinancialGoal:   req.FinancialGoal,
		ExpenseCategory: req.ExpenseCategory,
		Budgeting:       req.Budgeting,
	})
	if err != nil {
		if errors.Is(err, domain.ErrProfileExists) {
			metrics.ProfileSubmissionsTotal.WithLabelValues("already_submitted").Inc()
		}
		return err
	}
	metrics.ProfileSubmissionsTotal.WithLabelValues("saved").Inc()

	return c.JSON(http.StatusOK, map[string]string{"message": "Profile saved successfully"})
}

// profileDetailsResponse is the dashboard summary. Spending analytics are not
// implemented; every figure except the name is a placeholder until statement
// ingestion exists.
type profileDetailsResponse struct {
	Name               string   `json:"name"`
	MonthlyIncome      float64  `json:"monthly_income"`
	TopExpenseCategory string   `json:"top_expense_category"`
	TotalSpend         float64  `json:"total_spend"`
	NetSavings         float64  `json:"net_savings"`
	SavingsRate        float64  `json:"savings_rate"`
	Recommendations    []string `json:"recommendations"`
}

// Details returns the dashboard summary stub for the logged-in user.
//
// @Summary      Dashboard profile summary
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileDetailsResponse
// @Failure      401  {object}  map[string]string
// @Router       /user/profile/details [get]
func (h *ProfileHandler) Details(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	name := user.Name
	if name == "" {
		name = "User"
	}

	return c.JSON(http.StatusOK, profileDetailsResponse{
		Name:               name,
		TopExpenseCategory: "-",
		Recommendations: []string{
			"Upload a bank statement to see your spending insights.",
		},
	})
}
