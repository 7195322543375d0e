package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Proyecto is a club-run project open to member registrations.
type Proyecto struct {
	ID                     int64  `json:"id"`
	Titulo                 string `json:"titulo"`
	Descripcion            string `json:"descripcion"`
	Objetivo               string `json:"objetivo"`
	Requisitos             string `json:"requisitos"`
	Lugar                  string `json:"lugar"`
	CupoMaximo             int    `json:"cupoMaximo"`
	Inscritos              int    `json:"inscritos"`
	FechaInicioPostulacion string `json:"fechaInicioPostulacion"`
	FechaFinPostulacion    string `json:"fechaFinPostulacion"`
	FechaInicioProyecto    string `json:"fechaInicioProyecto"`
	FechaFinProyecto       string `json:"fechaFinProyecto"`
	ClubID                 int64  `json:"clubId,omitempty"`
	ClubNombre             string `json:"clubNombre,omitempty"`
	Estado                 string `json:"estado,omitempty"`
	EstadoProyecto         string `json:"estadoProyecto,omitempty"`
}

// CreateProyectoPayload is the body of POST /proyectos.
type CreateProyectoPayload struct {
	Titulo                 string `json:"titulo"                 validate:"required"`
	Descripcion            string `json:"descripcion"            validate:"required"`
	Objetivo               string `json:"objetivo"               validate:"required"`
	Requisitos             string `json:"requisitos"             validate:"required"`
	Lugar                  string `json:"lugar"                  validate:"required"`
	CupoMaximo             int    `json:"cupoMaximo"             validate:"required,gt=0"`
	FechaInicioPostulacion string `json:"fechaInicioPostulacion" validate:"required"`
	FechaFinPostulacion    string `json:"fechaFinPostulacion"    validate:"required"`
	FechaInicioProyecto    string `json:"fechaInicioProyecto"    validate:"required"`
	FechaFinProyecto       string `json:"fechaFinProyecto"       validate:"required"`
}

// UpdateProyectoPayload is the body of PATCH /proyectos/{id}.
type UpdateProyectoPayload struct {
	Titulo                 *string `json:"titulo,omitempty"`
	Descripcion            *string `json:"descripcion,omitempty"`
	Objetivo               *string `json:"objetivo,omitempty"`
	Requisitos             *string `json:"requisitos,omitempty"`
	Lugar                  *string `json:"lugar,omitempty"`
	CupoMaximo             *int    `json:"cupoMaximo,omitempty"             validate:"omitempty,gt=0"`
	FechaInicioPostulacion *string `json:"fechaInicioPostulacion,omitempty"`
	FechaFinPostulacion    *string `json:"fechaFinPostulacion,omitempty"`
	FechaInicioProyecto    *string `json:"fechaInicioProyecto,omitempty"`
	FechaFinProyecto       *string `json:"fechaFinProyecto,omitempty"`
}

// Compact drops blank text fields after trimming them and reports whether
// anything is left to send.
func (p *UpdateProyectoPayload) Compact() bool {
	fields := []**string{
		&p.Titulo, &p.Descripcion, &p.Objetivo, &p.Requisitos, &p.Lugar,
		&p.FechaInicioPostulacion, &p.FechaFinPostulacion,
		&p.FechaInicioProyecto, &p.FechaFinProyecto,
	}
	dirty := p.CupoMaximo != nil
	for _, f := range fields {
		*f = trimmedOrNil(*f)
		if *f != nil {
			dirty = true
		}
	}
	return dirty
}

// ProyectoEstadoLabel renders the display label of a project status,
// preferring estadoProyecto over the generic estado.
func ProyectoEstadoLabel(p Proyecto) string {
	value := p.EstadoProyecto
	if value == "" {
		value = p.Estado
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "Sin estado"
	}
	// Casers keep state, so each call gets its own.
	return cases.Title(language.Spanish).String(strings.ReplaceAll(value, "_", " "))
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
