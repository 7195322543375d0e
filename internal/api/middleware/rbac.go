package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/rotaract-d4465/portal/internal/core/domain"
)

// RequireRole admits only sessions holding one of allowed. A signed-in user
// with another role is sent to their own dashboard.
func RequireRole(sessions SessionReader, allowed ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state := sessions.State()
			if handled, err := apply(c, domain.EvaluateRoleGate(state, allowed), "role"); handled {
				return err
			}
			c.Set(ContextKeyUser, state.User)
			return next(c)
		}
	}
}
