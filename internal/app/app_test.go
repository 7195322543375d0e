package app

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotaract-d4465/portal/internal/core/domain"
	"github.com/rotaract-d4465/portal/internal/infrastructure/apiclient"
	"github.com/rotaract-d4465/portal/internal/pkg/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		API: config.APIConfig{BaseURL: "http://127.0.0.1:0", Timeout: time.Second},
		Store: config.StoreConfig{
			Backend:  config.StoreFile,
			StateDir: t.TempDir(),
			Key:      "test-auth",
		},
	}
}

func TestNew_FileStoreStartsAnonymous(t *testing.T) {
	a, err := New(context.Background(), testConfig(t), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	state := a.Sessions.State()
	assert.False(t, state.Loading)
	assert.False(t, state.Authenticated())
	assert.Empty(t, a.Checks())
}

func TestNew_RestoresRedisSession(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig(t)
	cfg.Store.Backend = config.StoreRedis
	cfg.Redis = config.RedisConfig{Addr: mr.Addr()}

	first, err := New(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, first.Store.Persist(context.Background(), domain.Session{
		User:   domain.User{Correo: "ana@club.org", Rol: "miembro"},
		Tokens: domain.Tokens{AccessToken: "opaque"},
	}))
	require.NoError(t, first.Close())

	a, err := New(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	state := a.Sessions.State()
	require.True(t, state.Authenticated())
	assert.Equal(t, domain.RoleSocio, state.Role())
	assert.Equal(t, "opaque", a.Sessions.AccessToken())

	checks := a.Checks()
	require.Contains(t, checks, "redis")
	assert.NoError(t, checks["redis"](context.Background()))
}

func TestNew_RedisUnreachable(t *testing.T) {
	cfg := testConfig(t)
	cfg.Store.Backend = config.StoreRedis
	cfg.Redis = config.RedisConfig{Addr: "127.0.0.1:1"}

	_, err := New(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)
}

func TestNew_UnauthorizedAnswerEndsStoredSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"message":"Token expirado"}`)
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(t)
	cfg.API.BaseURL = srv.URL
	seed, err := New(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, seed.Store.Persist(context.Background(), domain.Session{
		User:   domain.User{Correo: "ana@club.org", Rol: domain.RoleInteresado},
		Tokens: domain.Tokens{AccessToken: "opaque"},
	}))
	require.NoError(t, seed.Close())

	a, err := New(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	require.True(t, a.Sessions.State().Authenticated())

	_, err = a.Convocatorias.ListPublic(context.Background(), domain.PageParams{})
	apiErr, ok := apiclient.AsAPIError(err)
	require.True(t, ok, "expected *APIError, got %v", err)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	assert.False(t, a.Sessions.State().Authenticated())
	assert.Empty(t, a.Sessions.AccessToken())
	stored, err := a.Store.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, stored)
}
