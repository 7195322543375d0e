package handler

import "github.com/rotaract-d4465/portal/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type loginRequest struct {
	Correo     string `json:"correo"     validate:"required,email"`
	Contrasena string `json:"contrasena" validate:"required,min=6"`
}

type authResponse struct {
	User     *domain.User `json:"user"`
	Redirect string       `json:"redirect"`
}

type sessionResponse struct {
	Loading       bool         `json:"loading"`
	Authenticated bool         `json:"authenticated"`
	User          *domain.User `json:"user,omitempty"`
	RoleLabel     string       `json:"roleLabel,omitempty"`
	Home          string       `json:"home,omitempty"`
}

type indexResponse struct {
	Service string `json:"service"`
	Home    string `json:"home,omitempty"`
}

// pageResponse is the canonical list envelope.
type pageResponse[T any] struct {
	Items      []T  `json:"items"`
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
}

func toPageResponse[T, V any](p domain.Page[T], view func(T) V) pageResponse[V] {
	items := make([]V, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, view(item))
	}
	return pageResponse[V]{
		Items:      items,
		Total:      p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
		HasNext:    p.HasNext(),
	}
}

func identity[T any](v T) T { return v }

// proyectoView adds the display label of the project status.
type proyectoView struct {
	domain.Proyecto
	EstadoLabel string `json:"estadoLabel"`
}

func toProyectoView(p domain.Proyecto) proyectoView {
	return proyectoView{Proyecto: p, EstadoLabel: domain.ProyectoEstadoLabel(p)}
}

// inscripcionView flags the status family of a registration.
type inscripcionView struct {
	domain.Inscripcion
	Aceptada  bool `json:"aceptada"`
	Pendiente bool `json:"pendiente"`
}

func toInscripcionView(i domain.Inscripcion) inscripcionView {
	return inscripcionView{
		Inscripcion: i,
		Aceptada:    domain.IsAccepted(i.Estado),
		Pendiente:   domain.IsPending(i.Estado),
	}
}

type acceptedResponse struct {
	ProyectoID int64             `json:"proyectoId"`
	Items      []inscripcionView `json:"items"`
	Total      int               `json:"total"`
}
