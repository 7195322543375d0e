package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/rotaract-d4465/portal/internal/core/domain"
)

type fakeSessions struct {
	state domain.SessionState
}

func (f *fakeSessions) State() domain.SessionState { return f.state }

func (f *fakeSessions) Login(context.Context, string, string) (*domain.User, error) {
	return nil, domain.ErrInvalidAuthResponse
}

func (f *fakeSessions) Register(context.Context, domain.RegisterPayload) (*domain.User, error) {
	return nil, domain.ErrInvalidAuthResponse
}

func (f *fakeSessions) Logout(context.Context) { f.state = domain.SessionState{} }

type emptyCatalog struct{}

func (emptyCatalog) ListPublic(context.Context, domain.PageParams) (domain.Page[domain.Convocatoria], error) {
	return domain.Page[domain.Convocatoria]{Items: []domain.Convocatoria{}, TotalPages: 1}, nil
}

func (e emptyCatalog) ListClub(ctx context.Context, p domain.PageParams) (domain.Page[domain.Convocatoria], error) {
	return e.ListPublic(ctx, p)
}

func (emptyCatalog) Create(context.Context, domain.CreateConvocatoriaPayload) (*domain.Convocatoria, error) {
	return &domain.Convocatoria{}, nil
}

func (emptyCatalog) Update(context.Context, int64, domain.UpdateConvocatoriaPayload) (*domain.Convocatoria, error) {
	return nil, nil
}

func (emptyCatalog) Apply(context.Context, int64) error { return nil }

func (emptyCatalog) ListInscripciones(context.Context, int64, domain.PageParams, domain.InscripcionFilter) (domain.Page[domain.Inscripcion], error) {
	return domain.Page[domain.Inscripcion]{Items: []domain.Inscripcion{}, TotalPages: 1}, nil
}

func (emptyCatalog) Decide(context.Context, int64, int64, bool) error { return nil }

type inlineViews struct{ err error }

func (v inlineViews) Run(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return v.err
}

func newTestRouter(sessions *fakeSessions, views inlineViews, rateLimit int) http.Handler {
	return NewRouter(Deps{
		Sessions:       sessions,
		Convocatorias:  emptyCatalog{},
		Views:          views,
		Log:            zerolog.Nop(),
		LoginRateLimit: rateLimit,
		Registry:       prometheus.NewRegistry(),
	})
}

func signedInAs(role domain.Role) *fakeSessions {
	return &fakeSessions{state: domain.SessionState{
		User:   &domain.User{Correo: "ana@club.org", Rol: role},
		Tokens: &domain.Tokens{AccessToken: "t"},
	}}
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Gates(t *testing.T) {
	tests := []struct {
		name     string
		sessions *fakeSessions
		path     string
		code     int
		location string
	}{
		{
			name:     "anonymous goes to login with from",
			sessions: &fakeSessions{},
			path:     "/dashboard/interesado/convocatorias",
			code:     http.StatusSeeOther,
			location: "/auth/login?from=%2Fdashboard%2Finteresado%2Fconvocatorias",
		},
		{
			name:     "loading waits",
			sessions: &fakeSessions{state: domain.SessionState{Loading: true}},
			path:     "/dashboard",
			code:     http.StatusServiceUnavailable,
		},
		{
			name:     "dashboard root redirects to role home",
			sessions: signedInAs(domain.RolePresidente),
			path:     "/dashboard",
			code:     http.StatusSeeOther,
			location: "/dashboard/presidente",
		},
		{
			name:     "wrong role goes to own home",
			sessions: signedInAs(domain.RoleSocio),
			path:     "/dashboard/presidente/convocatorias",
			code:     http.StatusSeeOther,
			location: "/dashboard/socio",
		},
		{
			name:     "role home index redirects to first section",
			sessions: signedInAs(domain.RoleInteresado),
			path:     "/dashboard/interesado",
			code:     http.StatusSeeOther,
			location: "/dashboard/interesado/convocatorias",
		},
		{
			name:     "allowed role is served",
			sessions: signedInAs(domain.RoleInteresado),
			path:     "/dashboard/interesado/convocatorias",
			code:     http.StatusOK,
		},
		{
			name:     "shared section admits any listed role",
			sessions: signedInAs(domain.RoleRepresentante),
			path:     "/dashboard/convocatorias",
			code:     http.StatusOK,
		},
		{
			name:     "unknown dashboard route redirects to index",
			sessions: signedInAs(domain.RoleSocio),
			path:     "/dashboard/nada/por/aqui",
			code:     http.StatusSeeOther,
			location: "/",
		},
		{
			name:     "unknown route redirects to index",
			sessions: &fakeSessions{},
			path:     "/no-existe",
			code:     http.StatusSeeOther,
			location: "/",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(newTestRouter(tt.sessions, inlineViews{}, 0), http.MethodGet, tt.path, "")
			if rec.Code != tt.code {
				t.Fatalf("expected %d, got %d (%s)", tt.code, rec.Code, rec.Body.String())
			}
			if tt.location != "" && rec.Header().Get("Location") != tt.location {
				t.Fatalf("expected Location %q, got %q", tt.location, rec.Header().Get("Location"))
			}
		})
	}
}

func TestRouter_SupersededViewIsConflict(t *testing.T) {
	h := newTestRouter(signedInAs(domain.RoleInteresado), inlineViews{err: domain.ErrStaleView}, 0)

	rec := do(h, http.MethodGet, "/dashboard/interesado/convocatorias", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != `{"error":"superseded"}` {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRouter_LoginRateLimit(t *testing.T) {
	h := newTestRouter(&fakeSessions{}, inlineViews{}, 1)
	body := `{"correo":"ana@club.org","contrasena":"secreto"}`

	if rec := do(h, http.MethodPost, "/auth/login", body); rec.Code != http.StatusBadGateway {
		t.Fatalf("expected first attempt to reach the service, got %d", rec.Code)
	}
	if rec := do(h, http.MethodPost, "/auth/login", body); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestRouter_PublicEndpoints(t *testing.T) {
	h := newTestRouter(&fakeSessions{}, inlineViews{}, 0)

	for _, path := range []string{"/", "/health", "/health/ready", "/metrics", "/auth/session"} {
		if rec := do(h, http.MethodGet, path, ""); rec.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestRouter_SecureHeaders(t *testing.T) {
	rec := do(newTestRouter(&fakeSessions{}, inlineViews{}, 0), http.MethodGet, "/health", "")
	if rec.Header().Get("X-Frame-Options") != "DENY" {
		t.Fatalf("expected X-Frame-Options DENY, got %q", rec.Header().Get("X-Frame-Options"))
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("expected nosniff, got %q", rec.Header().Get("X-Content-Type-Options"))
	}
}
