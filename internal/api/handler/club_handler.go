package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rotaract-d4465/portal/internal/core/domain"
	"github.com/rotaract-d4465/portal/internal/core/ports"
)

type ClubHandler struct {
	api   ports.ClubAPI
	views ViewRunner
}

func NewClubHandler(api ports.ClubAPI, views ViewRunner) *ClubHandler {
	return &ClubHandler{api: api, views: views}
}

// List lists the clubs of the district.
//
// @Summary      Clubes
// @Tags         clubes
// @Produce      json
// @Param        page  query     int  false  "Page (0-based)"
// @Param        size  query     int  false  "Page size"
// @Success      200   {object}  map[string]any
// @Router       /dashboard/representante/clubes [get]
func (h *ClubHandler) List(c echo.Context) error {
	params, err := pageParams(c)
	if err != nil {
		return err
	}
	var page domain.Page[domain.Club]
	err = h.views.Run(c.Request().Context(), viewKey(c), func(ctx context.Context) error {
		page, err = h.api.ListClubes(ctx, params)
		return err
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPageResponse(page, identity[domain.Club]))
}
