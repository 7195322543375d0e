package ports

import (
	"context"

	"github.com/rotaract-d4465/portal/internal/core/domain"
)

// ConvocatoriaService is the use-case layer the dashboards call for calls
// for participation and their registrations.
type ConvocatoriaService interface {
	ListPublic(ctx context.Context, params domain.PageParams) (domain.Page[domain.Convocatoria], error)
	ListClub(ctx context.Context, params domain.PageParams) (domain.Page[domain.Convocatoria], error)
	Create(ctx context.Context, payload domain.CreateConvocatoriaPayload) (*domain.Convocatoria, error)
	// Update returns (nil, nil) without calling the API when payload carries
	// no field once blanks are dropped.
	Update(ctx context.Context, id int64, payload domain.UpdateConvocatoriaPayload) (*domain.Convocatoria, error)
	Apply(ctx context.Context, id int64) error
	ListInscripciones(ctx context.Context, id int64, params domain.PageParams, filter domain.InscripcionFilter) (domain.Page[domain.Inscripcion], error)
	Decide(ctx context.Context, id, inscripcionID int64, accept bool) error
}

// ProyectoService is the use-case layer for club projects.
type ProyectoService interface {
	ListClub(ctx context.Context, params domain.PageParams) (domain.Page[domain.Proyecto], error)
	Create(ctx context.Context, payload domain.CreateProyectoPayload) (*domain.Proyecto, error)
	Update(ctx context.Context, id int64, payload domain.UpdateProyectoPayload) (*domain.Proyecto, error)
	Apply(ctx context.Context, id int64) error
	ListInscripciones(ctx context.Context, id int64, params domain.PageParams) (domain.Page[domain.Inscripcion], error)
	// Accepted lists the accepted registrations of a project (first 100).
	Accepted(ctx context.Context, id int64) ([]domain.Inscripcion, error)
}
