package ports

import (
	"context"

	"github.com/rotaract-d4465/portal/internal/core/domain"
)

// ConvocatoriaAPI covers the /convocatorias endpoints.
type ConvocatoriaAPI interface {
	ListPublicConvocatorias(ctx context.Context, params domain.PageParams) (domain.Page[domain.Convocatoria], error)
	ListClubConvocatorias(ctx context.Context, params domain.PageParams) (domain.Page[domain.Convocatoria], error)
	CreateConvocatoria(ctx context.Context, payload domain.CreateConvocatoriaPayload) (*domain.Convocatoria, error)
	UpdateConvocatoria(ctx context.Context, id int64, payload domain.UpdateConvocatoriaPayload) (*domain.Convocatoria, error)
	InscribirseConvocatoria(ctx context.Context, id int64) error
	ListConvocatoriaInscripciones(ctx context.Context, id int64, params domain.PageParams) (domain.Page[domain.Inscripcion], error)
	AceptarInscripcion(ctx context.Context, id, inscripcionID int64) error
	RechazarInscripcion(ctx context.Context, id, inscripcionID int64) error
}

// ProyectoAPI covers the /proyectos endpoints.
type ProyectoAPI interface {
	ListClubProyectos(ctx context.Context, params domain.PageParams) (domain.Page[domain.Proyecto], error)
	CreateProyecto(ctx context.Context, payload domain.CreateProyectoPayload) (*domain.Proyecto, error)
	UpdateProyecto(ctx context.Context, id int64, payload domain.UpdateProyectoPayload) (*domain.Proyecto, error)
	InscribirseProyecto(ctx context.Context, id int64) error
	ListProyectoInscripciones(ctx context.Context, id int64, params domain.PageParams) (domain.Page[domain.Inscripcion], error)
}

// ClubAPI covers the /clubes endpoint.
type ClubAPI interface {
	ListClubes(ctx context.Context, params domain.PageParams) (domain.Page[domain.Club], error)
}
