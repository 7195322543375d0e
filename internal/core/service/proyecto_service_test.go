package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/rotaract-d4465/portal/internal/core/domain"
)

type stubProyectoAPI struct {
	lastParams domain.PageParams
	items      []domain.Inscripcion
	updates    int
}

func (a *stubProyectoAPI) ListClubProyectos(_ context.Context, _ domain.PageParams) (domain.Page[domain.Proyecto], error) {
	return domain.Page[domain.Proyecto]{Items: []domain.Proyecto{}, TotalPages: 1}, nil
}

func (a *stubProyectoAPI) CreateProyecto(_ context.Context, p domain.CreateProyectoPayload) (*domain.Proyecto, error) {
	return &domain.Proyecto{ID: 1, Titulo: p.Titulo}, nil
}

func (a *stubProyectoAPI) UpdateProyecto(_ context.Context, id int64, _ domain.UpdateProyectoPayload) (*domain.Proyecto, error) {
	a.updates++
	return &domain.Proyecto{ID: id}, nil
}

func (a *stubProyectoAPI) InscribirseProyecto(_ context.Context, _ int64) error { return nil }

func (a *stubProyectoAPI) ListProyectoInscripciones(_ context.Context, _ int64, p domain.PageParams) (domain.Page[domain.Inscripcion], error) {
	a.lastParams = p
	return domain.Page[domain.Inscripcion]{Items: a.items, Total: len(a.items), TotalPages: 1}, nil
}

func TestProyectoService_Accepted(t *testing.T) {
	api := &stubProyectoAPI{items: []domain.Inscripcion{
		{ID: 1, Estado: "PENDIENTE"},
		{ID: 2, Estado: "ACEPTADO"},
		{ID: 3, Estado: "Aceptada con observaciones"},
	}}
	svc := NewProyectoService(api, zerolog.Nop())

	got, err := svc.Accepted(context.Background(), 4)
	if err != nil {
		t.Fatalf("Accepted returned error: %v", err)
	}
	if api.lastParams.Size != 100 || api.lastParams.Page != 0 {
		t.Fatalf("expected page 0 size 100, got %+v", api.lastParams)
	}
	if len(got) != 2 || got[0].ID != 2 || got[1].ID != 3 {
		t.Fatalf("unexpected accepted list: %+v", got)
	}
}

func TestProyectoService_Update_EmptyIsNoop(t *testing.T) {
	api := &stubProyectoAPI{}
	svc := NewProyectoService(api, zerolog.Nop())

	got, err := svc.Update(context.Background(), 2, domain.UpdateProyectoPayload{Lugar: strPtr(" ")})
	if err != nil || got != nil {
		t.Fatalf("expected (nil, nil), got (%v, %v)", got, err)
	}
	if api.updates != 0 {
		t.Fatalf("expected no request")
	}

	cupo := 30
	if _, err := svc.Update(context.Background(), 2, domain.UpdateProyectoPayload{CupoMaximo: &cupo}); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if api.updates != 1 {
		t.Fatalf("expected one request, got %d", api.updates)
	}
}
