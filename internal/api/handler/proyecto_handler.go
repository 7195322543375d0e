package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rotaract-d4465/portal/internal/core/domain"
	"github.com/rotaract-d4465/portal/internal/core/ports"
)

type ProyectoHandler struct {
	service ports.ProyectoService
	views   ViewRunner
}

func NewProyectoHandler(service ports.ProyectoService, views ViewRunner) *ProyectoHandler {
	return &ProyectoHandler{service: service, views: views}
}

// List lists the projects of the caller's club with their status labels.
//
// @Summary      Club proyectos
// @Tags         proyectos
// @Produce      json
// @Param        page  query     int  false  "Page (0-based)"
// @Param        size  query     int  false  "Page size"
// @Success      200   {object}  map[string]any
// @Router       /dashboard/socio/proyectos [get]
func (h *ProyectoHandler) List(c echo.Context) error {
	params, err := pageParams(c)
	if err != nil {
		return err
	}
	var page domain.Page[domain.Proyecto]
	err = h.views.Run(c.Request().Context(), viewKey(c), func(ctx context.Context) error {
		page, err = h.service.ListClub(ctx, params)
		return err
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPageResponse(page, toProyectoView))
}

// Create opens a new project.
//
// @Summary      Create proyecto
// @Tags         proyectos
// @Accept       json
// @Produce      json
// @Param        body  body      domain.CreateProyectoPayload  true  "Proyecto"
// @Success      201   {object}  proyectoView
// @Failure      400   {object}  errorResponse
// @Router       /dashboard/presidente/proyectos [post]
func (h *ProyectoHandler) Create(c echo.Context) error {
	var req domain.CreateProyectoPayload
	if err := bindValid(c, &req); err != nil {
		return err
	}
	created, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toProyectoView(*created))
}

// Update sends the non-blank fields of the body, or answers 204 when none
// are left.
//
// @Summary      Update proyecto
// @Tags         proyectos
// @Accept       json
// @Produce      json
// @Param        id    path      int                            true  "Proyecto ID"
// @Param        body  body      domain.UpdateProyectoPayload  true  "Campos a cambiar"
// @Success      200   {object}  proyectoView
// @Success      204
// @Router       /dashboard/presidente/proyectos/{id} [patch]
func (h *ProyectoHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req domain.UpdateProyectoPayload
	if err := bindValid(c, &req); err != nil {
		return err
	}
	updated, err := h.service.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	if updated == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, toProyectoView(*updated))
}

// Apply registers the caller to a project.
//
// @Summary      Inscribirse en proyecto
// @Tags         proyectos
// @Param        id  path  int  true  "Proyecto ID"
// @Success      204
// @Router       /dashboard/socio/proyectos/{id}/inscribirse [post]
func (h *ProyectoHandler) Apply(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Apply(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListInscripciones lists every registration of a project.
//
// @Summary      Inscripciones de proyecto
// @Tags         proyectos
// @Produce      json
// @Param        id  path      int  true  "Proyecto ID"
// @Success      200  {object}  map[string]any
// @Router       /dashboard/presidente/proyectos/{id}/inscripciones [get]
func (h *ProyectoHandler) ListInscripciones(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	params, err := pageParams(c)
	if err != nil {
		return err
	}
	var page domain.Page[domain.Inscripcion]
	err = h.views.Run(c.Request().Context(), viewKey(c), func(ctx context.Context) error {
		page, err = h.service.ListInscripciones(ctx, id, params)
		return err
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPageResponse(page, toInscripcionView))
}

// Accepted lists the accepted members of a project.
//
// @Summary      Miembros aceptados
// @Tags         proyectos
// @Produce      json
// @Param        id  path      int  true  "Proyecto ID"
// @Success      200  {object}  acceptedResponse
// @Router       /dashboard/socio/proyectos/{id}/aceptados [get]
func (h *ProyectoHandler) Accepted(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var items []domain.Inscripcion
	err = h.views.Run(c.Request().Context(), viewKey(c), func(ctx context.Context) error {
		items, err = h.service.Accepted(ctx, id)
		return err
	})
	if err != nil {
		return err
	}
	views := make([]inscripcionView, 0, len(items))
	for _, item := range items {
		views = append(views, toInscripcionView(item))
	}
	return c.JSON(http.StatusOK, acceptedResponse{ProyectoID: id, Items: views, Total: len(views)})
}
