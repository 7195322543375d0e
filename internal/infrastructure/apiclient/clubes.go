package apiclient

import (
	"context"

	"github.com/rotaract-d4465/portal/internal/core/domain"
)

// ListClubes lists the clubs of the district.
func (c *Client) ListClubes(ctx context.Context, params domain.PageParams) (domain.Page[domain.Club], error) {
	return listPage[domain.Club](ctx, c, "/clubes", params)
}
