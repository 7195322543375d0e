// Package app is the composition root shared by the portal and the CLI.
package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/rotaract-d4465/portal/internal/core/ports"
	"github.com/rotaract-d4465/portal/internal/core/service"
	"github.com/rotaract-d4465/portal/internal/infrastructure/apiclient"
	"github.com/rotaract-d4465/portal/internal/infrastructure/tokenstore"
	"github.com/rotaract-d4465/portal/internal/pkg/config"
)

// App holds the single instance of every collaborator of one process.
type App struct {
	Store         ports.TokenStore
	Client        *apiclient.Client
	Sessions      *service.SessionService
	Convocatorias ports.ConvocatoriaService
	Proyectos     ports.ProyectoService
	Views         *service.ViewScopes

	redis *redis.Client
}

// New wires the token store, API client and services, then bootstraps the
// session. A bootstrap failure is logged and leaves the session anonymous.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	store, rdb, err := openStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	// The client needs the session for its token and 401 hook, and the
	// session needs the client; the closures resolve sessions lazily.
	var sessions *service.SessionService
	client := apiclient.New(cfg.API.BaseURL,
		apiclient.WithTimeout(cfg.API.Timeout),
		apiclient.WithLogger(log),
		apiclient.WithTokenSource(func() string { return sessions.AccessToken() }),
		apiclient.WithUnauthorizedHandler(func(ctx context.Context) {
			if sessions != nil {
				sessions.HandleUnauthorized(ctx)
			}
		}),
	)
	sessions = service.NewSessionService(store, client, log)

	if err := sessions.Bootstrap(ctx); err != nil {
		log.Warn().Err(err).Msg("session bootstrap failed, starting anonymous")
	}

	return &App{
		Store:         store,
		Client:        client,
		Sessions:      sessions,
		Convocatorias: service.NewConvocatoriaService(client, log),
		Proyectos:     service.NewProyectoService(client, log),
		Views:         service.NewViewScopes(log),
		redis:         rdb,
	}, nil
}

// Checks are the readiness probes of the configured backends.
func (a *App) Checks() map[string]func(ctx context.Context) error {
	checks := map[string]func(ctx context.Context) error{}
	if a.redis != nil {
		checks["redis"] = func(ctx context.Context) error { return a.redis.Ping(ctx).Err() }
	}
	return checks
}

// Close releases backend connections.
func (a *App) Close() error {
	if a.redis != nil {
		return a.redis.Close()
	}
	return nil
}

func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.TokenStore, *redis.Client, error) {
	switch cfg.Store.Backend {
	case config.StoreRedis:
		rdb, err := tokenstore.DialRedis(ctx, cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("open token store: %w", err)
		}
		return tokenstore.NewRedisStore(rdb, cfg.Store.Key, log), rdb, nil
	default:
		return tokenstore.NewFileStore(cfg.Store.StateDir, cfg.Store.Key, log), nil, nil
	}
}
