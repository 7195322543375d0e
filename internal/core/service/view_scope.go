package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rotaract-d4465/portal/internal/core/domain"
)

// ViewScopes tracks one in-flight request per named view. Starting a new
// request for a view cancels the one before it, so its late response can be
// discarded instead of overwriting fresher data.
type ViewScopes struct {
	log zerolog.Logger

	mu     sync.Mutex
	active map[string]viewScope
}

type viewScope struct {
	token  string
	cancel context.CancelCauseFunc
}

func NewViewScopes(log zerolog.Logger) *ViewScopes {
	return &ViewScopes{
		log:    log.With().Str("component", "views").Logger(),
		active: make(map[string]viewScope),
	}
}

// Run executes fn under a context bound to view. If a newer Run for the same
// view starts before fn returns, fn's context is cancelled and Run returns
// domain.ErrStaleView whatever fn returned.
func (v *ViewScopes) Run(ctx context.Context, view string, fn func(ctx context.Context) error) error {
	scoped, token := v.begin(ctx, view)
	defer v.end(view, token)

	err := fn(scoped)
	if errors.Is(context.Cause(scoped), domain.ErrStaleView) {
		v.log.Debug().Str("view", view).Str("scope", token).Msg("discarded superseded response")
		return domain.ErrStaleView
	}
	return err
}

func (v *ViewScopes) begin(ctx context.Context, view string) (context.Context, string) {
	scoped, cancel := context.WithCancelCause(ctx)
	token := uuid.NewString()

	v.mu.Lock()
	if prev, ok := v.active[view]; ok {
		prev.cancel(domain.ErrStaleView)
	}
	v.active[view] = viewScope{token: token, cancel: cancel}
	v.mu.Unlock()

	return scoped, token
}

func (v *ViewScopes) end(view, token string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if cur, ok := v.active[view]; ok && cur.token == token {
		cur.cancel(context.Canceled)
		delete(v.active, view)
	}
}
