package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/rotaract-d4465/portal/internal/api/metrics"
	"github.com/rotaract-d4465/portal/internal/core/domain"
	"github.com/rotaract-d4465/portal/internal/core/ports"
)

// SessionService owns the single authenticated session of the process. It
// starts in the loading state until Bootstrap has read the token store.
type SessionService struct {
	store ports.TokenStore
	api   ports.AuthAPI
	log   zerolog.Logger
	now   func() time.Time

	mu      sync.RWMutex
	loading bool
	session *domain.Session
}

// NewSessionService returns a session owner in the loading state.
func NewSessionService(store ports.TokenStore, api ports.AuthAPI, log zerolog.Logger) *SessionService {
	return &SessionService{
		store:   store,
		api:     api,
		log:     log.With().Str("component", "session").Logger(),
		now:     time.Now,
		loading: true,
	}
}

// Bootstrap restores the persisted session, if any, and clears the loading
// flag. The stored role is normalized again and written back. A stored JWT
// whose exp lies in the past is discarded.
func (s *SessionService) Bootstrap(ctx context.Context) error {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
		metrics.SessionTransitionsTotal.WithLabelValues("bootstrap").Inc()
	}()

	stored, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap session: %w", err)
	}
	if stored == nil || stored.Tokens.AccessToken == "" {
		return nil
	}

	if s.expired(stored.Tokens.AccessToken) {
		s.log.Info().Str("correo", stored.User.Correo).Msg("stored token expired, discarding session")
		metrics.SessionTransitionsTotal.WithLabelValues("expired").Inc()
		if err := s.store.Clear(ctx); err != nil {
			return fmt.Errorf("bootstrap session: %w", err)
		}
		return nil
	}

	role, resolution := domain.ResolveRole(string(stored.User.Rol))
	s.recordResolution(string(stored.User.Rol), resolution)
	stored.User.Rol = role
	if err := s.store.Persist(ctx, *stored); err != nil {
		s.log.Warn().Err(err).Msg("could not persist normalized session")
	}

	s.publish(stored)
	return nil
}

// Login authenticates against the API and, on success, persists and
// publishes the new session. API failures are returned unchanged.
func (s *SessionService) Login(ctx context.Context, correo, contrasena string) (*domain.User, error) {
	body, err := s.api.Login(ctx, domain.LoginPayload{Correo: correo, Contrasena: contrasena})
	if err != nil {
		return nil, err
	}
	return s.establish(ctx, "login", body)
}

// Register creates an account and signs it in exactly like Login.
func (s *SessionService) Register(ctx context.Context, payload domain.RegisterPayload) (*domain.User, error) {
	body, err := s.api.Register(ctx, payload)
	if err != nil {
		return nil, err
	}
	return s.establish(ctx, "register", body)
}

func (s *SessionService) establish(ctx context.Context, event string, body []byte) (*domain.User, error) {
	auth, err := domain.NormalizeAuthResponse(body)
	if err != nil {
		return nil, err
	}
	s.recordResolution(auth.RawRole, auth.Resolution)

	if err := s.store.Persist(ctx, auth.Session); err != nil {
		s.log.Warn().Err(err).Msg("could not persist session")
	}
	s.publish(&auth.Session)

	metrics.SessionTransitionsTotal.WithLabelValues(event).Inc()
	s.log.Info().Str("correo", auth.Session.User.Correo).Str("rol", string(auth.Session.User.Rol)).Msg(event)

	user := auth.Session.User
	return &user, nil
}

// Logout drops the session from memory and then from the store. Calling it
// while anonymous is harmless.
func (s *SessionService) Logout(ctx context.Context) {
	s.drop(ctx, "logout")
}

// HandleUnauthorized is invoked by the API client whenever the server
// answers 401.
func (s *SessionService) HandleUnauthorized(ctx context.Context) {
	s.drop(ctx, "unauthorized")
}

func (s *SessionService) drop(ctx context.Context, event string) {
	s.mu.Lock()
	had := s.session != nil
	s.session = nil
	s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		s.log.Warn().Err(err).Msg("could not clear token store")
	}
	if had {
		metrics.SessionTransitionsTotal.WithLabelValues(event).Inc()
		s.log.Info().Str("reason", event).Msg("session ended")
	}
}

// State returns a snapshot of the session. The returned pointers are copies.
func (s *SessionService) State() domain.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := domain.SessionState{Loading: s.loading}
	if s.session != nil {
		user := s.session.User
		tokens := s.session.Tokens
		state.User = &user
		state.Tokens = &tokens
	}
	return state
}

// AccessToken returns the live bearer token, or "" when anonymous.
func (s *SessionService) AccessToken() string {
	if s == nil {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return ""
	}
	return s.session.Tokens.AccessToken
}

func (s *SessionService) publish(session *domain.Session) {
	clone := *session
	s.mu.Lock()
	s.session = &clone
	s.mu.Unlock()
}

// expired reports whether token is a JWT past its exp claim. Tokens that do
// not parse as JWTs, or carry no exp, never expire here.
func (s *SessionService) expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.After(s.now())
}

func (s *SessionService) recordResolution(raw string, resolution domain.RoleResolution) {
	if resolution == domain.RoleMatched {
		return
	}
	metrics.RoleFallbacksTotal.WithLabelValues(string(resolution)).Inc()
	s.log.Warn().Str("raw_role", raw).Str("reason", string(resolution)).Msg("role fell back to INTERESADO")
}
