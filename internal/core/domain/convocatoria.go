package domain

// Convocatoria is a call for participation published by a club. Its fields
// mirror the API payload; every rule on them is enforced server-side.
type Convocatoria struct {
	ID                     int64  `json:"id"`
	Titulo                 string `json:"titulo"`
	Descripcion            string `json:"descripcion"`
	Requisitos             string `json:"requisitos"`
	CupoMaximo             int    `json:"cupoMaximo"`
	FechaPublicacion       string `json:"fechaPublicacion"`
	FechaCierre            string `json:"fechaCierre"`
	FechaInicioPostulacion string `json:"fechaInicioPostulacion"`
	FechaFinPostulacion    string `json:"fechaFinPostulacion"`
	ClubID                 int64  `json:"clubId"`
	ClubNombre             string `json:"clubNombre"`
	Estado                 string `json:"estado"`
}

// CreateConvocatoriaPayload is the body of POST /convocatorias.
type CreateConvocatoriaPayload struct {
	Titulo                 string `json:"titulo"                 validate:"required"`
	Descripcion            string `json:"descripcion"            validate:"required"`
	CupoMaximo             int    `json:"cupoMaximo"             validate:"required,gt=0"`
	FechaPublicacion       string `json:"fechaPublicacion"       validate:"required"`
	FechaCierre            string `json:"fechaCierre"            validate:"required"`
	FechaInicioPostulacion string `json:"fechaInicioPostulacion" validate:"required"`
	FechaFinPostulacion    string `json:"fechaFinPostulacion"    validate:"required"`
	Requisitos             string `json:"requisitos"             validate:"required"`
}

// UpdateConvocatoriaPayload is the body of PATCH /convocatorias/{id}. Nil
// fields are left untouched by the server.
type UpdateConvocatoriaPayload struct {
	Titulo                 *string `json:"titulo,omitempty"`
	Descripcion            *string `json:"descripcion,omitempty"`
	CupoMaximo             *int    `json:"cupoMaximo,omitempty"             validate:"omitempty,gt=0"`
	FechaCierre            *string `json:"fechaCierre,omitempty"`
	FechaInicioPostulacion *string `json:"fechaInicioPostulacion,omitempty"`
	FechaFinPostulacion    *string `json:"fechaFinPostulacion,omitempty"`
	Requisitos             *string `json:"requisitos,omitempty"`
}

// Compact drops blank text fields after trimming them and reports whether
// anything is left to send.
func (p *UpdateConvocatoriaPayload) Compact() bool {
	p.Titulo = trimmedOrNil(p.Titulo)
	p.Descripcion = trimmedOrNil(p.Descripcion)
	p.FechaCierre = trimmedOrNil(p.FechaCierre)
	p.FechaInicioPostulacion = trimmedOrNil(p.FechaInicioPostulacion)
	p.FechaFinPostulacion = trimmedOrNil(p.FechaFinPostulacion)
	p.Requisitos = trimmedOrNil(p.Requisitos)
	return p.Titulo != nil || p.Descripcion != nil || p.CupoMaximo != nil ||
		p.FechaCierre != nil || p.FechaInicioPostulacion != nil ||
		p.FechaFinPostulacion != nil || p.Requisitos != nil
}
