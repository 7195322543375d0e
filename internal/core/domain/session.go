package domain

import "errors"

const (
	LoginRoute    = "/auth/login"
	RegisterRoute = "/auth/register"
	DashboardRoot = "/dashboard"
)

var (
	ErrNotAuthenticated    = errors.New("not authenticated")
	ErrInvalidAuthResponse = errors.New("no se recibieron tokens válidos del servidor")
	ErrInvalidID           = errors.New("invalid identifier")
	ErrStaleView           = errors.New("request superseded by a newer one")
)

// User is the profile of the authenticated actor.
type User struct {
	ID        string `json:"id,omitempty"`
	Nombre    string `json:"nombre,omitempty"`
	Apellidos string `json:"apellidos,omitempty"`
	Correo    string `json:"correo"`
	Rol       Role   `json:"rol"`
}

// DisplayName prefers the name and falls back to the e-mail address.
func (u User) DisplayName() string {
	if u.Nombre != "" {
		return u.Nombre
	}
	return u.Correo
}

// Tokens carries the bearer credentials issued by the API.
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// Session pairs a user with the tokens that authenticate it. A Session is
// only ever built with both halves present.
type Session struct {
	User   User   `json:"user"`
	Tokens Tokens `json:"tokens"`
}

// SessionState is a read-only snapshot of the session owner. User and Tokens
// are both nil or both set.
type SessionState struct {
	Loading bool
	User    *User
	Tokens  *Tokens
}

// Authenticated reports whether the snapshot carries an access token.
func (s SessionState) Authenticated() bool {
	return s.Tokens != nil && s.Tokens.AccessToken != ""
}

// Role returns the role of the snapshot user, or "" when anonymous.
func (s SessionState) Role() Role {
	if s.User == nil {
		return ""
	}
	return s.User.Rol
}
