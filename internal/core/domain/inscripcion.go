package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Inscripcion links a user to a convocatoria or proyecto. Estado is the
// server's status string, kept verbatim.
type Inscripcion struct {
	ID               int64  `json:"id"`
	UsuarioID        int64  `json:"usuarioId"`
	UsuarioNombre    string `json:"usuarioNombre"`
	UsuarioCorreo    string `json:"usuarioCorreo"`
	Tipo             string `json:"tipo"`
	ReferenciaID     int64  `json:"referenciaId"`
	ReferenciaTitulo string `json:"referenciaTitulo"`
	Estado           string `json:"estado"`
	FechaRegistro    string `json:"fechaRegistro"`
}

const estadoPendiente = "PENDIENTE"

var acceptedStates = map[string]struct{}{
	"APROBADO": {},
	"APROBADA": {},
	"ACEPTADO": {},
	"ACEPTADA": {},
}

// IsAccepted recognizes the accepted-like statuses the API emits.
func IsAccepted(estado string) bool {
	s := upperTrim(estado)
	if _, ok := acceptedStates[s]; ok {
		return true
	}
	return strings.HasPrefix(s, "ACEPT")
}

// IsPending reports whether a registration still awaits a decision.
func IsPending(estado string) bool {
	return upperTrim(estado) == estadoPendiente
}

// InscripcionFilter selects registrations by status family.
type InscripcionFilter string

const (
	FilterTodas     InscripcionFilter = "TODAS"
	FilterPendiente InscripcionFilter = "PENDIENTE"
	FilterAceptada  InscripcionFilter = "ACEPTADA"
)

// ParseInscripcionFilter is lenient: anything unknown means FilterTodas.
func ParseInscripcionFilter(raw string) InscripcionFilter {
	switch f := InscripcionFilter(upperTrim(raw)); f {
	case FilterPendiente, FilterAceptada:
		return f
	default:
		return FilterTodas
	}
}

// FilterInscripciones keeps the registrations matching f, in order.
func FilterInscripciones(items []Inscripcion, f InscripcionFilter) []Inscripcion {
	if f == FilterTodas || f == "" {
		return items
	}
	out := make([]Inscripcion, 0, len(items))
	for _, item := range items {
		switch {
		case f == FilterPendiente && IsPending(item.Estado):
			out = append(out, item)
		case f == FilterAceptada && IsAccepted(item.Estado):
			out = append(out, item)
		}
	}
	return out
}

// upperTrim is the key status and filter strings are compared under.
func upperTrim(s string) string {
	return cases.Upper(language.Und).String(strings.TrimSpace(s))
}
