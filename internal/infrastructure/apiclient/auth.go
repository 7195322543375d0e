package apiclient

import (
	"context"
	"net/http"

	"github.com/rotaract-d4465/portal/internal/core/domain"
)

// Login posts the credentials and returns the raw auth response.
func (c *Client) Login(ctx context.Context, payload domain.LoginPayload) ([]byte, error) {
	return c.doRequest(ctx, http.MethodPost, "/auth/login", nil, payload)
}

// Register creates an account and returns the raw auth response.
func (c *Client) Register(ctx context.Context, payload domain.RegisterPayload) ([]byte, error) {
	return c.doRequest(ctx, http.MethodPost, "/auth/register", nil, payload)
}
