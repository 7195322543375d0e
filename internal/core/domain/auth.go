package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// LoginPayload is the body of POST /auth/login.
type LoginPayload struct {
	Correo     string `json:"correo"     validate:"required,email"`
	Contrasena string `json:"contrasena" validate:"required,min=6"`
}

// RegisterPayload is the body of POST /auth/register.
type RegisterPayload struct {
	Nombre          string `json:"nombre"          validate:"required"`
	Correo          string `json:"correo"          validate:"required,email"`
	Contrasena      string `json:"contrasena"      validate:"required,min=6"`
	Ciudad          string `json:"ciudad"          validate:"required"`
	FechaNacimiento string `json:"fechaNacimiento" validate:"required,datetime=2006-01-02"`
}

// NormalizedAuth is the session built from an auth response together with
// how its role string was resolved.
type NormalizedAuth struct {
	Session    Session
	RawRole    string
	Resolution RoleResolution
}

// NormalizeAuthResponse builds a session from the body of a login or
// register response. The API answers with a flat object, but tokens nested
// under "data" and users nested under "usuario"/"user" are accepted too.
func NormalizeAuthResponse(body []byte) (NormalizedAuth, error) {
	var source map[string]any
	if err := json.Unmarshal(body, &source); err != nil || source == nil {
		return NormalizedAuth{}, fmt.Errorf("decode auth response: %w", ErrInvalidAuthResponse)
	}
	data, _ := source["data"].(map[string]any)

	access := firstString(source, "accessToken", "token", "access_token")
	if access == "" {
		access = firstString(data, "accessToken")
	}
	if access == "" {
		return NormalizedAuth{}, ErrInvalidAuthResponse
	}
	refresh := firstString(source, "refreshToken", "refresh_token")
	if refresh == "" {
		refresh = firstString(data, "refreshToken")
	}

	rawUser := source
	if u, ok := source["usuario"].(map[string]any); ok {
		rawUser = u
	} else if u, ok := source["user"].(map[string]any); ok {
		rawUser = u
	} else if u, ok := data["usuario"].(map[string]any); ok {
		rawUser = u
	}

	rawRole := firstString(rawUser, "rol", "role")
	role, resolution := ResolveRole(rawRole)

	return NormalizedAuth{
		Session: Session{
			User: User{
				ID:        firstString(rawUser, "id", "_id", "uid"),
				Correo:    firstString(rawUser, "correo", "email"),
				Nombre:    firstString(rawUser, "nombre", "nombres", "firstName"),
				Apellidos: firstString(rawUser, "apellidos", "lastName"),
				Rol:       role,
			},
			Tokens: Tokens{AccessToken: access, RefreshToken: refresh},
		},
		RawRole:    rawRole,
		Resolution: resolution,
	}, nil
}

// firstString returns the first key holding a non-empty string or a number.
func firstString(m map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := m[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}
