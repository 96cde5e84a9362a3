package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/smartspending/coach-api/internal/api/metrics"
	"github.com/smartspending/coach-api/internal/core/domain"
	"github.com/smartspending/coach-api/internal/core/ports"
	"github.com/smartspending/coach-api/internal/pkg/token"
)

const userContextKey = "current_user"

// Auth gates a route behind a bearer token. On success the full user record
// (not just the token subject) is resolved and injected into the context so
// handlers can use name and email without another lookup.
func Auth(verifier *token.Issuer, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.WithLabelValues("malformed").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			subject, err := verifier.Verify(parts[1])
			if err != nil {
				reason := "invalid"
				if errors.Is(err, token.ErrExpired) {
					reason = "expired"
				}
				metrics.TokenRejectionsTotal.WithLabelValues(reason).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			user, err := users.FindByID(c.Request().Context(), subject)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.TokenRejectionsTotal.WithLabelValues("unknown_user").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
				}
				return err
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser extracts the authenticated user injected by Auth. Absence means
// the middleware did not run on this route; treat it as unauthenticated.
func CurrentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(userContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
