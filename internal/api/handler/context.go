package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rotaract-d4465/portal/internal/api/middleware"
	"github.com/rotaract-d4465/portal/internal/core/domain"
)

// currentUser returns the user the gate middleware admitted. Its absence
// means the route was mounted without a gate.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.ContextKeyUser).(*domain.User)
	if user == nil {
		return nil, domain.ErrNotAuthenticated
	}
	return user, nil
}

// viewKey names the view a list request belongs to: the concrete request
// path, so the registrations of two different calls never supersede each
// other while two requests for the same list do. The query string is not
// part of the key.
func viewKey(c echo.Context) string {
	return c.Request().URL.Path
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

// pageParams reads ?page= and ?size=. Both are optional.
func pageParams(c echo.Context) (domain.PageParams, error) {
	var params domain.PageParams
	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			return params, echo.NewHTTPError(http.StatusBadRequest, "page debe ser un entero mayor o igual a 0")
		}
		params.Page = page
	}
	if raw := c.QueryParam("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			return params, echo.NewHTTPError(http.StatusBadRequest, "size debe ser un entero positivo")
		}
		params.Size = size
	}
	return params, nil
}

// bindValid binds the request body into dst and validates it.
func bindValid(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cuerpo de la solicitud inválido")
	}
	if err := c.Validate(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
