package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rotaract-d4465/portal/internal/core/domain"
	"github.com/rotaract-d4465/portal/internal/core/ports"
)

type convocatoriaService struct {
	api ports.ConvocatoriaAPI
	log zerolog.Logger
}

// NewConvocatoriaService returns a ConvocatoriaService implementation.
func NewConvocatoriaService(api ports.ConvocatoriaAPI, log zerolog.Logger) ports.ConvocatoriaService {
	return &convocatoriaService{
		api: api,
		log: log.With().Str("component", "convocatorias").Logger(),
	}
}

func (s *convocatoriaService) ListPublic(ctx context.Context, params domain.PageParams) (domain.Page[domain.Convocatoria], error) {
	return s.api.ListPublicConvocatorias(ctx, params)
}

func (s *convocatoriaService) ListClub(ctx context.Context, params domain.PageParams) (domain.Page[domain.Convocatoria], error) {
	return s.api.ListClubConvocatorias(ctx, params)
}

func (s *convocatoriaService) Create(ctx context.Context, payload domain.CreateConvocatoriaPayload) (*domain.Convocatoria, error) {
	created, err := s.api.CreateConvocatoria(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("create convocatoria: %w", err)
	}
	s.log.Info().Int64("id", created.ID).Str("titulo", created.Titulo).Msg("convocatoria created")
	return created, nil
}

func (s *convocatoriaService) Update(ctx context.Context, id int64, payload domain.UpdateConvocatoriaPayload) (*domain.Convocatoria, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	if !payload.Compact() {
		s.log.Debug().Int64("id", id).Msg("empty update skipped")
		return nil, nil
	}
	updated, err := s.api.UpdateConvocatoria(ctx, id, payload)
	if err != nil {
		return nil, fmt.Errorf("update convocatoria %d: %w", id, err)
	}
	return updated, nil
}

func (s *convocatoriaService) Apply(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidID
	}
	if err := s.api.InscribirseConvocatoria(ctx, id); err != nil {
		return fmt.Errorf("inscribirse convocatoria %d: %w", id, err)
	}
	return nil
}

// ListInscripciones fetches one page of registrations and keeps those
// matching filter. Pagination metadata is the server's, unfiltered.
func (s *convocatoriaService) ListInscripciones(ctx context.Context, id int64, params domain.PageParams, filter domain.InscripcionFilter) (domain.Page[domain.Inscripcion], error) {
	if id <= 0 {
		return domain.Page[domain.Inscripcion]{}, domain.ErrInvalidID
	}
	page, err := s.api.ListConvocatoriaInscripciones(ctx, id, params)
	if err != nil {
		return domain.Page[domain.Inscripcion]{}, fmt.Errorf("list inscripciones %d: %w", id, err)
	}
	page.Items = domain.FilterInscripciones(page.Items, filter)
	return page, nil
}

func (s *convocatoriaService) Decide(ctx context.Context, id, inscripcionID int64, accept bool) error {
	if id <= 0 || inscripcionID <= 0 {
		return domain.ErrInvalidID
	}
	decide, verb := s.api.RechazarInscripcion, "rechazar"
	if accept {
		decide, verb = s.api.AceptarInscripcion, "aceptar"
	}
	if err := decide(ctx, id, inscripcionID); err != nil {
		return fmt.Errorf("%s inscripcion %d: %w", verb, inscripcionID, err)
	}
	s.log.Info().Int64("convocatoria", id).Int64("inscripcion", inscripcionID).Str("decision", verb).Msg("inscripcion decided")
	return nil
}
