package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/docuvault/dms/internal/api/metrics"
	"github.com/docuvault/dms/internal/core/domain"
)

// RequireAdmin enforces the role-gate: only identities with the admin flag
// pass. Must run after Auth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := c.Get(ContextKeyIdentity).(domain.Identity)
			if !ok || !identity.IsAdmin {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "admin access required")
			}
			return next(c)
		}
	}
}

// RequireSelfOrAdmin enforces the owner-gate on routes whose :id path
// parameter is a user id: the request passes when the identity is that user
// or an admin. Must run after Auth.
func RequireSelfOrAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := c.Get(ContextKeyIdentity).(domain.Identity)
			if !ok || !identity.Allows(c.Param("id")) {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}
