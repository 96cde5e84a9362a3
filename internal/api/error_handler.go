package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/smartspending/coach-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Detail string `json:"detail"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"detail": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Detail: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes. Duplicate email and
	// bad credentials are both 400 with fixed wording; the credential
	// message is deliberately identical for unknown email and wrong
	// password.
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest, "Email already registered"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, "Invalid email or password"
	case errors.Is(err, domain.ErrProfileExists):
		return http.StatusBadRequest, "Profile already submitted"
	case errors.Is(err, domain.ErrTooManyLogins):
		return http.StatusTooManyRequests, "Too many login attempts, try again later"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusUnauthorized, "Not authenticated"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
