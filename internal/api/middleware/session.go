package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lumenstudio/studio/internal/core/domain"
	"github.com/lumenstudio/studio/internal/core/ports"
)

// ContextKeyPrincipal holds the session principal in the echo context.
const ContextKeyPrincipal = "principal"

// RequireSession rejects requests without a session of kind and exposes the
// principal to handlers.
func RequireSession(sessions ports.SessionDirectory, kind domain.PrincipalKind) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, err := sessions.CurrentPrincipal(c.Request().Context(), kind)
			if err != nil {
				return err
			}
			if p == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "login required")
			}
			c.Set(ContextKeyPrincipal, p)
			return next(c)
		}
	}
}

// PrincipalFrom returns the principal set by RequireSession.
func PrincipalFrom(c echo.Context) (*domain.Principal, bool) {
	p, ok := c.Get(ContextKeyPrincipal).(*domain.Principal)
	return p, ok && p != nil
}
