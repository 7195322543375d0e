package domain

// Club is a district club as listed for representatives.
type Club struct {
	ID       int64  `json:"id"`
	Nombre   string `json:"nombre"`
	Ciudad   string `json:"ciudad"`
	Miembros int    `json:"miembros"`
}
