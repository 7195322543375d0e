// Command portal serves the district dashboards as a local HTTP gateway over
// the district REST API.
//
// @title        Rotaract D4465 Portal
// @version      1.0
// @description  Local gateway over the district REST API.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/rotaract-d4465/portal/internal/api"
	"github.com/rotaract-d4465/portal/internal/api/handler"
	"github.com/rotaract-d4465/portal/internal/app"
	"github.com/rotaract-d4465/portal/internal/pkg/config"
	"github.com/rotaract-d4465/portal/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "portal",
	})

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("portal stopped with error")
		os.Exit(1)
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	checks := make(map[string]handler.Check)
	for name, check := range a.Checks() {
		checks[name] = check
	}

	e := api.NewRouter(api.Deps{
		Sessions:       a.Sessions,
		Convocatorias:  a.Convocatorias,
		Proyectos:      a.Proyectos,
		Clubes:         a.Client,
		Views:          a.Views,
		Checks:         checks,
		Log:            logger.For("http"),
		LoginRateLimit: cfg.LoginRateLimit,
		Production:     cfg.IsProduction(),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Str("api", a.Client.BaseURL()).Msg("portal listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
