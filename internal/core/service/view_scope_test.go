package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/rotaract-d4465/portal/internal/core/domain"
)

func TestViewScopes_NewerRunSupersedesOlder(t *testing.T) {
	scopes := NewViewScopes(zerolog.Nop())
	started := make(chan struct{})
	release := make(chan struct{})
	result := make(chan error, 1)

	go func() {
		result <- scopes.Run(context.Background(), "socio.proyectos", func(ctx context.Context) error {
			close(started)
			<-release
			return nil
		})
	}()
	<-started

	if err := scopes.Run(context.Background(), "socio.proyectos", func(context.Context) error { return nil }); err != nil {
		t.Fatalf("newer run returned error: %v", err)
	}
	close(release)

	if err := <-result; !errors.Is(err, domain.ErrStaleView) {
		t.Fatalf("expected ErrStaleView, got %v", err)
	}
}

func TestViewScopes_CancelsOlderContext(t *testing.T) {
	scopes := NewViewScopes(zerolog.Nop())
	started := make(chan struct{})
	result := make(chan error, 1)

	go func() {
		result <- scopes.Run(context.Background(), "v", func(ctx context.Context) error {
			close(started)
			<-ctx.Done()
			return ctx.Err()
		})
	}()
	<-started

	_ = scopes.Run(context.Background(), "v", func(context.Context) error { return nil })
	if err := <-result; !errors.Is(err, domain.ErrStaleView) {
		t.Fatalf("expected ErrStaleView, got %v", err)
	}
}

func TestViewScopes_IndependentViews(t *testing.T) {
	scopes := NewViewScopes(zerolog.Nop())
	want := errors.New("boom")

	if err := scopes.Run(context.Background(), "a", func(context.Context) error { return want }); err != want {
		t.Fatalf("expected fn error passed through, got %v", err)
	}
	if err := scopes.Run(context.Background(), "b", func(context.Context) error { return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(scopes.active) != 0 {
		t.Fatalf("expected no active scopes, got %d", len(scopes.active))
	}
}
