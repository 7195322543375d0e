package ports

import (
	"context"

	"github.com/rotaract-d4465/portal/internal/core/domain"
)

// TokenStore keeps the one durable session slot of the application.
type TokenStore interface {
	// Persist overwrites the slot with session.
	Persist(ctx context.Context, session domain.Session) error
	// Load returns the stored session, or nil when the slot is empty. A
	// corrupt slot is erased and reported as empty.
	Load(ctx context.Context) (*domain.Session, error)
	// Clear erases the slot. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error
}
