package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rotaract-d4465/portal/internal/core/domain"
	"github.com/rotaract-d4465/portal/internal/core/ports"
)

// ViewRunner scopes a list request to its view so a newer request for the
// same view supersedes it. Handlers key views by request path (see viewKey).
type ViewRunner interface {
	Run(ctx context.Context, view string, fn func(ctx context.Context) error) error
}

type ConvocatoriaHandler struct {
	service ports.ConvocatoriaService
	views   ViewRunner
}

func NewConvocatoriaHandler(service ports.ConvocatoriaService, views ViewRunner) *ConvocatoriaHandler {
	return &ConvocatoriaHandler{service: service, views: views}
}

// ListPublic lists the open calls shown to prospective members.
//
// @Summary      Public convocatorias
// @Tags         convocatorias
// @Produce      json
// @Param        page  query     int  false  "Page (0-based)"
// @Param        size  query     int  false  "Page size"
// @Success      200   {object}  map[string]any
// @Failure      409   {object}  errorResponse
// @Router       /dashboard/interesado/convocatorias [get]
func (h *ConvocatoriaHandler) ListPublic(c echo.Context) error {
	return h.list(c, h.service.ListPublic)
}

// ListClub lists the calls of the caller's club.
//
// @Summary      Club convocatorias
// @Tags         convocatorias
// @Produce      json
// @Param        page  query     int  false  "Page (0-based)"
// @Param        size  query     int  false  "Page size"
// @Success      200   {object}  map[string]any
// @Router       /dashboard/presidente/convocatorias [get]
func (h *ConvocatoriaHandler) ListClub(c echo.Context) error {
	return h.list(c, h.service.ListClub)
}

func (h *ConvocatoriaHandler) list(c echo.Context, fetch func(context.Context, domain.PageParams) (domain.Page[domain.Convocatoria], error)) error {
	params, err := pageParams(c)
	if err != nil {
		return err
	}
	var page domain.Page[domain.Convocatoria]
	err = h.views.Run(c.Request().Context(), viewKey(c), func(ctx context.Context) error {
		page, err = fetch(ctx, params)
		return err
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPageResponse(page, identity[domain.Convocatoria]))
}

// Create publishes a new call for the caller's club.
//
// @Summary      Create convocatoria
// @Tags         convocatorias
// @Accept       json
// @Produce      json
// @Param        body  body      domain.CreateConvocatoriaPayload  true  "Convocatoria"
// @Success      201   {object}  domain.Convocatoria
// @Failure      400   {object}  errorResponse
// @Router       /dashboard/presidente/convocatorias [post]
func (h *ConvocatoriaHandler) Create(c echo.Context) error {
	var req domain.CreateConvocatoriaPayload
	if err := bindValid(c, &req); err != nil {
		return err
	}
	created, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update sends the non-blank fields of the body. A body with nothing left
// to send is answered 204 without calling the API.
//
// @Summary      Update convocatoria
// @Tags         convocatorias
// @Accept       json
// @Produce      json
// @Param        id    path      int                                true  "Convocatoria ID"
// @Param        body  body      domain.UpdateConvocatoriaPayload  true  "Campos a cambiar"
// @Success      200   {object}  domain.Convocatoria
// @Success      204
// @Router       /dashboard/presidente/convocatorias/{id} [patch]
func (h *ConvocatoriaHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req domain.UpdateConvocatoriaPayload
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
	return c.JSON(http.StatusOK, updated)
}

// Apply registers the caller to a call.
//
// @Summary      Inscribirse en convocatoria
// @Tags         convocatorias
// @Param        id  path  int  true  "Convocatoria ID"
// @Success      204
// @Router       /dashboard/interesado/convocatorias/{id}/inscribirse [post]
func (h *ConvocatoriaHandler) Apply(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Apply(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListInscripciones lists the registrations of a call, filtered by
// ?estado=TODAS|PENDIENTE|ACEPTADA.
//
// @Summary      Inscripciones de convocatoria
// @Tags         convocatorias
// @Produce      json
// @Param        id      path      int     true   "Convocatoria ID"
// @Param        estado  query     string  false  "TODAS, PENDIENTE o ACEPTADA"
// @Success      200     {object}  map[string]any
// @Router       /dashboard/presidente/convocatorias/{id}/inscripciones [get]
func (h *ConvocatoriaHandler) ListInscripciones(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	params, err := pageParams(c)
	if err != nil {
		return err
	}
	filter := domain.ParseInscripcionFilter(c.QueryParam("estado"))

	var page domain.Page[domain.Inscripcion]
	err = h.views.Run(c.Request().Context(), viewKey(c), func(ctx context.Context) error {
		page, err = h.service.ListInscripciones(ctx, id, params, filter)
		return err
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPageResponse(page, toInscripcionView))
}

// Accept approves a registration.
//
// @Summary      Aceptar inscripción
// @Tags         convocatorias
// @Param        id     path  int  true  "Convocatoria ID"
// @Param        regId  path  int  true  "Inscripción ID"
// @Success      204
// @Router       /dashboard/presidente/convocatorias/{id}/inscripciones/{regId}/aceptar [post]
func (h *ConvocatoriaHandler) Accept(c echo.Context) error {
	return h.decide(c, true)
}

// Reject declines a registration.
//
// @Summary      Rechazar inscripción
// @Tags         convocatorias
// @Param        id     path  int  true  "Convocatoria ID"
// @Param        regId  path  int  true  "Inscripción ID"
// @Success      204
// @Router       /dashboard/presidente/convocatorias/{id}/inscripciones/{regId}/rechazar [post]
func (h *ConvocatoriaHandler) Reject(c echo.Context) error {
	return h.decide(c, false)
}

func (h *ConvocatoriaHandler) decide(c echo.Context, accept bool) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	regID, err := pathID(c, "regId")
	if err != nil {
		return err
	}
	if err := h.service.Decide(c.Request().Context(), id, regID, accept); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
