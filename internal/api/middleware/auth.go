package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rotaract-d4465/portal/internal/api/metrics"
	"github.com/rotaract-d4465/portal/internal/core/domain"
)

// ContextKeyUser is the echo context key holding the *domain.User of an
// admitted request.
const ContextKeyUser = "user"

// SessionReader exposes the current session snapshot.
type SessionReader interface {
	State() domain.SessionState
}

type waitResponse struct {
	Status string `json:"status"`
}

// RequireSession admits only authenticated requests. Anonymous visitors are
// redirected to the login route with the requested path as "from"; while the
// session is still loading the request is answered 503 with Retry-After.
func RequireSession(sessions SessionReader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state := sessions.State()
			decision := domain.EvaluateAuthGate(state, c.Request().URL.Path)
			if handled, err := apply(c, decision, "auth"); handled {
				return err
			}
			c.Set(ContextKeyUser, state.User)
			return next(c)
		}
	}
}

// apply renders a non-Allow decision and reports whether it did.
func apply(c echo.Context, decision domain.GateDecision, gate string) (bool, error) {
	switch decision.Outcome {
	case domain.GateWait:
		c.Response().Header().Set("Retry-After", "1")
		return true, c.JSON(http.StatusServiceUnavailable, waitResponse{Status: "loading"})
	case domain.GateRedirect:
		metrics.GuardRedirectsTotal.WithLabelValues(gate).Inc()
		return true, c.Redirect(http.StatusSeeOther, decision.Location)
	default:
		return false, nil
	}
}
