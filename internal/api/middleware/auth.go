package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/docuvault/dms/internal/api/metrics"
	"github.com/docuvault/dms/internal/core/domain"
)

// HeaderAuthToken is the request header carrying the signed auth token.
// Login writes the issued token back in the same response header.
const HeaderAuthToken = "x-auth-token"

// ContextKeyIdentity is the echo context key under which Auth stores the
// decoded domain.Identity.
const ContextKeyIdentity = "identity"

// TokenVerifier decodes a signed token into an identity.
type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

// Auth validates the x-auth-token header and injects the decoded identity
// into the request context. Missing and invalid tokens both reject with 401.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(HeaderAuthToken)
			if token == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing auth token")
			}

			identity, err := verifier.Verify(token)
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid auth token")
			}

			c.Set(ContextKeyIdentity, identity)
			return next(c)
		}
	}
}
