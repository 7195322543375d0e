package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/rotaract-d4465/portal/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub API
// ---------------------------------------------------------------------------

type stubConvocatoriaAPI struct {
	inscripciones []domain.Inscripcion
	updates       int
	lastUpdate    domain.UpdateConvocatoriaPayload
	accepted      []int64
	rejected      []int64
	applyErr      error
}

func (a *stubConvocatoriaAPI) ListPublicConvocatorias(_ context.Context, p domain.PageParams) (domain.Page[domain.Convocatoria], error) {
	return domain.Page[domain.Convocatoria]{Items: []domain.Convocatoria{{ID: 1}}, Total: 1, Page: p.Page, PageSize: 1, TotalPages: 1}, nil
}

func (a *stubConvocatoriaAPI) ListClubConvocatorias(_ context.Context, _ domain.PageParams) (domain.Page[domain.Convocatoria], error) {
	return domain.Page[domain.Convocatoria]{Items: []domain.Convocatoria{}, TotalPages: 1}, nil
}

func (a *stubConvocatoriaAPI) CreateConvocatoria(_ context.Context, p domain.CreateConvocatoriaPayload) (*domain.Convocatoria, error) {
	return &domain.Convocatoria{ID: 10, Titulo: p.Titulo}, nil
}

func (a *stubConvocatoriaAPI) UpdateConvocatoria(_ context.Context, id int64, p domain.UpdateConvocatoriaPayload) (*domain.Convocatoria, error) {
	a.updates++
	a.lastUpdate = p
	return &domain.Convocatoria{ID: id}, nil
}

func (a *stubConvocatoriaAPI) InscribirseConvocatoria(_ context.Context, _ int64) error {
	return a.applyErr
}

func (a *stubConvocatoriaAPI) ListConvocatoriaInscripciones(_ context.Context, _ int64, _ domain.PageParams) (domain.Page[domain.Inscripcion], error) {
	return domain.Page[domain.Inscripcion]{Items: a.inscripciones, Total: len(a.inscripciones), TotalPages: 1}, nil
}

func (a *stubConvocatoriaAPI) AceptarInscripcion(_ context.Context, _, regID int64) error {
	a.accepted = append(a.accepted, regID)
	return nil
}

func (a *stubConvocatoriaAPI) RechazarInscripcion(_ context.Context, _, regID int64) error {
	a.rejected = append(a.rejected, regID)
	return nil
}

func strPtr(s string) *string { return &s }

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestConvocatoriaService_Update_EmptyIsNoop(t *testing.T) {
	api := &stubConvocatoriaAPI{}
	svc := NewConvocatoriaService(api, zerolog.Nop())

	got, err := svc.Update(context.Background(), 3, domain.UpdateConvocatoriaPayload{Titulo: strPtr("   ")})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if got != nil || api.updates != 0 {
		t.Fatalf("expected no request, got updates=%d", api.updates)
	}
}

func TestConvocatoriaService_Update_SendsTrimmedFields(t *testing.T) {
	api := &stubConvocatoriaAPI{}
	svc := NewConvocatoriaService(api, zerolog.Nop())

	_, err := svc.Update(context.Background(), 3, domain.UpdateConvocatoriaPayload{
		Titulo:      strPtr("  Foro  "),
		Descripcion: strPtr(""),
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if api.updates != 1 {
		t.Fatalf("expected one request, got %d", api.updates)
	}
	if api.lastUpdate.Titulo == nil || *api.lastUpdate.Titulo != "Foro" {
		t.Fatalf("expected trimmed titulo, got %v", api.lastUpdate.Titulo)
	}
	if api.lastUpdate.Descripcion != nil {
		t.Fatalf("blank descripcion must be dropped")
	}
}

func TestConvocatoriaService_InvalidID(t *testing.T) {
	svc := NewConvocatoriaService(&stubConvocatoriaAPI{}, zerolog.Nop())

	if err := svc.Apply(context.Background(), 0); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if err := svc.Decide(context.Background(), 1, -1, true); !errors.Is(err, domain.ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestConvocatoriaService_ListInscripciones_Filters(t *testing.T) {
	api := &stubConvocatoriaAPI{inscripciones: []domain.Inscripcion{
		{ID: 1, Estado: "PENDIENTE"},
		{ID: 2, Estado: "ACEPTADA"},
		{ID: 3, Estado: "aprobado"},
		{ID: 4, Estado: "RECHAZADA"},
	}}
	svc := NewConvocatoriaService(api, zerolog.Nop())

	cases := []struct {
		filter domain.InscripcionFilter
		want   []int64
	}{
		{domain.FilterTodas, []int64{1, 2, 3, 4}},
		{domain.FilterPendiente, []int64{1}},
		{domain.FilterAceptada, []int64{2, 3}},
	}
	for _, tc := range cases {
		page, err := svc.ListInscripciones(context.Background(), 9, domain.PageParams{}, tc.filter)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.filter, err)
		}
		if len(page.Items) != len(tc.want) {
			t.Fatalf("%s: expected %d items, got %d", tc.filter, len(tc.want), len(page.Items))
		}
		for i, id := range tc.want {
			if page.Items[i].ID != id {
				t.Fatalf("%s: item %d: expected id %d, got %d", tc.filter, i, id, page.Items[i].ID)
			}
		}
		if page.Total != 4 {
			t.Fatalf("%s: server total must be kept, got %d", tc.filter, page.Total)
		}
	}
}

func TestConvocatoriaService_Decide(t *testing.T) {
	api := &stubConvocatoriaAPI{}
	svc := NewConvocatoriaService(api, zerolog.Nop())

	if err := svc.Decide(context.Background(), 1, 5, true); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if err := svc.Decide(context.Background(), 1, 6, false); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if len(api.accepted) != 1 || api.accepted[0] != 5 {
		t.Fatalf("unexpected accepted: %v", api.accepted)
	}
	if len(api.rejected) != 1 || api.rejected[0] != 6 {
		t.Fatalf("unexpected rejected: %v", api.rejected)
	}
}

func TestConvocatoriaService_Apply_WrapsError(t *testing.T) {
	remote := errors.New("ya inscrito")
	svc := NewConvocatoriaService(&stubConvocatoriaAPI{applyErr: remote}, zerolog.Nop())

	if err := svc.Apply(context.Background(), 2); !errors.Is(err, remote) {
		t.Fatalf("expected wrapped remote error, got %v", err)
	}
}
