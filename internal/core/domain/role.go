package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Role is one of the four canonical actor categories of the district.
type Role string

const (
	RoleInteresado    Role = "INTERESADO"
	RoleSocio         Role = "SOCIO"
	RolePresidente    Role = "PRESIDENTE DEL CLUB"
	RoleRepresentante Role = "REPRESENTANTE DISTRITAL"
)

// Roles lists the canonical roles in privilege order.
var Roles = []Role{RoleInteresado, RoleSocio, RolePresidente, RoleRepresentante}

// RoleResolution tells how a raw role string was mapped.
type RoleResolution string

const (
	RoleMatched      RoleResolution = "matched"
	RoleMissing      RoleResolution = "missing"
	RoleUnrecognized RoleResolution = "unrecognized"
)

// roleDictionary maps upper-cased server strings, synonyms included.
var roleDictionary = map[string]Role{
	"INTERESADO":              RoleInteresado,
	"SOCIO":                   RoleSocio,
	"MIEMBRO":                 RoleSocio,
	"PRESIDENTE DEL CLUB":     RolePresidente,
	"PRESIDENTE":              RolePresidente,
	"REPRESENTANTE DISTRITAL": RoleRepresentante,
	"REPRESENTANTE":           RoleRepresentante,
	"DISTRITAL":               RoleRepresentante,
}

var homeRoutes = map[Role]string{
	RoleInteresado:    "/dashboard/interesado",
	RoleSocio:         "/dashboard/socio",
	RolePresidente:    "/dashboard/presidente",
	RoleRepresentante: "/dashboard/representante",
}

var roleLabels = map[Role]string{
	RoleInteresado:    "Interesado",
	RoleSocio:         "Socio",
	RolePresidente:    "Presidente del Club",
	RoleRepresentante: "Representante Distrital",
}

// ResolveRole maps raw to a canonical role and reports whether the input was
// matched, absent or unknown. Absent and unknown inputs both resolve to
// RoleInteresado.
func ResolveRole(raw string) (Role, RoleResolution) {
	key := cases.Upper(language.Und).String(strings.TrimSpace(raw))
	if key == "" {
		return RoleInteresado, RoleMissing
	}
	if role, ok := roleDictionary[key]; ok {
		return role, RoleMatched
	}
	return RoleInteresado, RoleUnrecognized
}

// NormalizeRole maps any server-provided role string to a canonical role.
func NormalizeRole(raw string) Role {
	role, _ := ResolveRole(raw)
	return role
}

// Valid reports whether r is one of the canonical roles.
func (r Role) Valid() bool {
	_, ok := homeRoutes[r]
	return ok
}

// HomeRoute is the dashboard path a role lands on after authenticating.
func HomeRoute(r Role) string {
	if route, ok := homeRoutes[r]; ok {
		return route
	}
	return LoginRoute
}

// Label returns the display name of r.
func Label(r Role) string {
	if label, ok := roleLabels[r]; ok {
		return label
	}
	return string(r)
}
