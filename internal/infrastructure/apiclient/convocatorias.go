package apiclient

import (
	"context"
	"fmt"

	"github.com/rotaract-d4465/portal/internal/core/domain"
)

// listPage fetches path and normalizes whatever pagination shape it returns.
func listPage[T any](ctx context.Context, c *Client, path string, params domain.PageParams) (domain.Page[T], error) {
	raw, err := c.get(ctx, path, params.Query())
	if err != nil {
		return domain.Page[T]{}, err
	}
	page := domain.NormalizePage[T](raw, params)
	if page.Skipped > 0 {
		c.log.Warn().Str("path", path).Int("skipped", page.Skipped).Int("kept", len(page.Items)).
			Msg("dropped list elements that did not decode")
	}
	return page, nil
}

func (c *Client) ListPublicConvocatorias(ctx context.Context, params domain.PageParams) (domain.Page[domain.Convocatoria], error) {
	return listPage[domain.Convocatoria](ctx, c, "/convocatorias/public", params)
}

// ListClubConvocatorias lists the calls of the caller's club.
func (c *Client) ListClubConvocatorias(ctx context.Context, params domain.PageParams) (domain.Page[domain.Convocatoria], error) {
	return listPage[domain.Convocatoria](ctx, c, "/convocatorias", params)
}

func (c *Client) CreateConvocatoria(ctx context.Context, payload domain.CreateConvocatoriaPayload) (*domain.Convocatoria, error) {
	var out domain.Convocatoria
	if err := c.post(ctx, "/convocatorias", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateConvocatoria(ctx context.Context, id int64, payload domain.UpdateConvocatoriaPayload) (*domain.Convocatoria, error) {
	var out domain.Convocatoria
	if err := c.patch(ctx, fmt.Sprintf("/convocatorias/%d", id), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) InscribirseConvocatoria(ctx context.Context, id int64) error {
	return c.post(ctx, fmt.Sprintf("/convocatorias/%d/inscribirse", id), nil, nil)
}

func (c *Client) ListConvocatoriaInscripciones(ctx context.Context, id int64, params domain.PageParams) (domain.Page[domain.Inscripcion], error) {
	return listPage[domain.Inscripcion](ctx, c, fmt.Sprintf("/convocatorias/%d/inscripciones", id), params)
}

func (c *Client) AceptarInscripcion(ctx context.Context, id, inscripcionID int64) error {
	return c.post(ctx, fmt.Sprintf("/convocatorias/%d/inscripciones/%d/aceptar", id, inscripcionID), nil, nil)
}

func (c *Client) RechazarInscripcion(ctx context.Context, id, inscripcionID int64) error {
	return c.post(ctx, fmt.Sprintf("/convocatorias/%d/inscripciones/%d/rechazar", id, inscripcionID), nil, nil)
}
