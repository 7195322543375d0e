package domain

import (
	"errors"
	"testing"
)

func TestNormalizeAuthResponse(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		access     string
		refresh    string
		correo     string
		role       Role
		resolution RoleResolution
	}{
		{
			name:       "flat",
			body:       `{"accessToken":"a","refreshToken":"r","correo":"ana@club.org","rol":"SOCIO","id":12}`,
			access:     "a",
			refresh:    "r",
			correo:     "ana@club.org",
			role:       RoleSocio,
			resolution: RoleMatched,
		},
		{
			name:       "nested data and usuario",
			body:       `{"data":{"accessToken":"a","refreshToken":"r","usuario":{"email":"b@club.org","role":"presidente"}}}`,
			access:     "a",
			refresh:    "r",
			correo:     "b@club.org",
			role:       RolePresidente,
			resolution: RoleMatched,
		},
		{
			name:       "token alias without role",
			body:       `{"token":"a","user":{"correo":"c@club.org"}}`,
			access:     "a",
			correo:     "c@club.org",
			role:       RoleInteresado,
			resolution: RoleMissing,
		},
		{
			name:       "unknown role",
			body:       `{"access_token":"a","rol":"SUPERADMIN"}`,
			access:     "a",
			role:       RoleInteresado,
			resolution: RoleUnrecognized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeAuthResponse([]byte(tt.body))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			s := got.Session
			if s.Tokens.AccessToken != tt.access || s.Tokens.RefreshToken != tt.refresh {
				t.Fatalf("unexpected tokens: %+v", s.Tokens)
			}
			if s.User.Correo != tt.correo || s.User.Rol != tt.role || got.Resolution != tt.resolution {
				t.Fatalf("unexpected user %+v resolution %q", s.User, got.Resolution)
			}
		})
	}
}

func TestNormalizeAuthResponse_NumericID(t *testing.T) {
	got, err := NormalizeAuthResponse([]byte(`{"accessToken":"a","id":42}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Session.User.ID != "42" {
		t.Fatalf("expected id 42, got %q", got.Session.User.ID)
	}
}

func TestNormalizeAuthResponse_Rejects(t *testing.T) {
	for _, body := range []string{``, `null`, `[]`, `{"refreshToken":"r"}`, `{"accessToken":""}`} {
		if _, err := NormalizeAuthResponse([]byte(body)); !errors.Is(err, ErrInvalidAuthResponse) {
			t.Fatalf("body %q: expected ErrInvalidAuthResponse, got %v", body, err)
		}
	}
}
