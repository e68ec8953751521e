package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/docuvault/dms/internal/api/middleware"
	"github.com/docuvault/dms/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware. Its
// presence proves the middleware ran; a handler reached without it is a
// wiring bug, rejected as 401 rather than panicking.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := c.Get(middleware.ContextKeyIdentity).(domain.Identity)
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}
