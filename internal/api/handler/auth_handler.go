package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rotaract-d4465/portal/internal/core/domain"
	"github.com/rotaract-d4465/portal/internal/core/ports"
)

type AuthHandler struct {
	sessions ports.SessionService
}

func NewAuthHandler(sessions ports.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// Login signs the portal session in.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credenciales"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	user, err := h.sessions.Login(c.Request().Context(), req.Correo, req.Contrasena)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{User: user, Redirect: domain.HomeRoute(user.Rol)})
}

// Register creates an account and signs it in.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      domain.RegisterPayload  true  "Datos de registro"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      502   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req domain.RegisterPayload
	if err := bindValid(c, &req); err != nil {
		return err
	}

	user, err := h.sessions.Register(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, authResponse{User: user, Redirect: domain.HomeRoute(user.Rol)})
}

// Logout ends the session. It always succeeds.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.Logout(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}

// Session describes the current session.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	state := h.sessions.State()
	resp := sessionResponse{
		Loading:       state.Loading,
		Authenticated: state.Authenticated(),
		User:          state.User,
	}
	if role := state.Role(); role != "" {
		resp.RoleLabel = domain.Label(role)
		resp.Home = domain.HomeRoute(role)
	}
	return c.JSON(http.StatusOK, resp)
}
