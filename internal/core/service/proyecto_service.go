package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rotaract-d4465/portal/internal/core/domain"
	"github.com/rotaract-d4465/portal/internal/core/ports"
)

// acceptedPageSize bounds the single page fetched for the accepted list.
const acceptedPageSize = 100

type proyectoService struct {
	api ports.ProyectoAPI
	log zerolog.Logger
}

// NewProyectoService returns a ProyectoService implementation.
func NewProyectoService(api ports.ProyectoAPI, log zerolog.Logger) ports.ProyectoService {
	return &proyectoService{
		api: api,
		log: log.With().Str("component", "proyectos").Logger(),
	}
}

func (s *proyectoService) ListClub(ctx context.Context, params domain.PageParams) (domain.Page[domain.Proyecto], error) {
	return s.api.ListClubProyectos(ctx, params)
}

func (s *proyectoService) Create(ctx context.Context, payload domain.CreateProyectoPayload) (*domain.Proyecto, error) {
	created, err := s.api.CreateProyecto(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("create proyecto: %w", err)
	}
	s.log.Info().Int64("id", created.ID).Str("titulo", created.Titulo).Msg("proyecto created")
	return created, nil
}

func (s *proyectoService) Update(ctx context.Context, id int64, payload domain.UpdateProyectoPayload) (*domain.Proyecto, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	if !payload.Compact() {
		s.log.Debug().Int64("id", id).Msg("empty update skipped")
		return nil, nil
	}
	updated, err := s.api.UpdateProyecto(ctx, id, payload)
	if err != nil {
		return nil, fmt.Errorf("update proyecto %d: %w", id, err)
	}
	return updated, nil
}

func (s *proyectoService) Apply(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidID
	}
	if err := s.api.InscribirseProyecto(ctx, id); err != nil {
		return fmt.Errorf("inscribirse proyecto %d: %w", id, err)
	}
	return nil
}

func (s *proyectoService) ListInscripciones(ctx context.Context, id int64, params domain.PageParams) (domain.Page[domain.Inscripcion], error) {
	if id <= 0 {
		return domain.Page[domain.Inscripcion]{}, domain.ErrInvalidID
	}
	page, err := s.api.ListProyectoInscripciones(ctx, id, params)
	if err != nil {
		return domain.Page[domain.Inscripcion]{}, fmt.Errorf("list inscripciones %d: %w", id, err)
	}
	return page, nil
}

func (s *proyectoService) Accepted(ctx context.Context, id int64) ([]domain.Inscripcion, error) {
	page, err := s.ListInscripciones(ctx, id, domain.PageParams{Page: 0, Size: acceptedPageSize})
	if err != nil {
		return nil, err
	}
	return domain.FilterInscripciones(page.Items, domain.FilterAceptada), nil
}
