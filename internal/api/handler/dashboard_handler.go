package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rotaract-d4465/portal/internal/core/domain"
	"github.com/rotaract-d4465/portal/internal/core/ports"
)

const serviceName = "rotaract-d4465-portal"

// DashboardHandler serves the entry points that only redirect.
type DashboardHandler struct {
	sessions ports.SessionService
}

func NewDashboardHandler(sessions ports.SessionService) *DashboardHandler {
	return &DashboardHandler{sessions: sessions}
}

// Index is the public landing route.
//
// @Summary      Landing
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  indexResponse
// @Router       / [get]
func (h *DashboardHandler) Index(c echo.Context) error {
	resp := indexResponse{Service: serviceName}
	if role := h.sessions.State().Role(); role != "" {
		resp.Home = domain.HomeRoute(role)
	}
	return c.JSON(http.StatusOK, resp)
}

// Home sends an admitted user to the dashboard of their role.
//
// @Summary      Role home redirect
// @Tags         dashboard
// @Success      303
// @Router       /dashboard [get]
func (h *DashboardHandler) Home(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, domain.HomeRoute(user.Rol))
}

// RedirectTo answers every request with a 303 to location.
func RedirectTo(location string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Redirect(http.StatusSeeOther, location)
	}
}
