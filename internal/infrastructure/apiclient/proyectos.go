package apiclient

import (
	"context"
	"fmt"

	"github.com/rotaract-d4465/portal/internal/core/domain"
)

func (c *Client) ListClubProyectos(ctx context.Context, params domain.PageParams) (domain.Page[domain.Proyecto], error) {
	return listPage[domain.Proyecto](ctx, c, "/proyectos", params)
}

func (c *Client) CreateProyecto(ctx context.Context, payload domain.CreateProyectoPayload) (*domain.Proyecto, error) {
	var out domain.Proyecto
	if err := c.post(ctx, "/proyectos", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProyecto(ctx context.Context, id int64, payload domain.UpdateProyectoPayload) (*domain.Proyecto, error) {
	var out domain.Proyecto
	if err := c.patch(ctx, fmt.Sprintf("/proyectos/%d", id), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) InscribirseProyecto(ctx context.Context, id int64) error {
	return c.post(ctx, fmt.Sprintf("/proyectos/%d/inscribirse", id), nil, nil)
}

func (c *Client) ListProyectoInscripciones(ctx context.Context, id int64, params domain.PageParams) (domain.Page[domain.Inscripcion], error) {
	return listPage[domain.Inscripcion](ctx, c, fmt.Sprintf("/proyectos/%d/inscripciones", id), params)
}
