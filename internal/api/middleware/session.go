package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jovens-paroquia/membership/internal/core/domain"
	"github.com/jovens-paroquia/membership/internal/core/ports"
)

// ContextUserID is the echo context key holding the signed-in account id.
const ContextUserID = "user_id"

// RequireSession rejects requests while no member is signed in and injects the
// account id into context.
func RequireSession(session ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			snap := session.Snapshot()
			if !snap.Authenticated() {
				return echo.NewHTTPError(http.StatusUnauthorized, domain.MsgNotAuthenticated)
			}

			c.Set(ContextUserID, snap.CurrentUserID)

			return next(c)
		}
	}
}
