package ports

import (
	"context"

	"github.com/rotaract-d4465/portal/internal/core/domain"
)

// AuthAPI is the remote authentication surface. Both calls return the raw
// response body so the caller can normalize its shape.
type AuthAPI interface {
	Login(ctx context.Context, payload domain.LoginPayload) ([]byte, error)
	Register(ctx context.Context, payload domain.RegisterPayload) ([]byte, error)
}

// SessionService owns the session of the running process.
type SessionService interface {
	State() domain.SessionState
	Login(ctx context.Context, correo, contrasena string) (*domain.User, error)
	Register(ctx context.Context, payload domain.RegisterPayload) (*domain.User, error)
	Logout(ctx context.Context)
}
