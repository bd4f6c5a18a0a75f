package model

import "strings"

// PromptRequest is the form posted by the front end. Structured revisions use
// Rol/Tarea/Formato/Tono/Contexto; the legacy revision uses
// Contexto/Indicaciones/Lenguaje/Uso. Unknown keys are ignored.
type PromptRequest struct {
	Rol      string `json:"rol"`
	Tarea    string `json:"tarea"`
	Formato  string `json:"formato"`
	Tono     string `json:"tono"`
	Contexto string `json:"contexto"`

	Indicaciones string `json:"indicaciones"`
	Lenguaje     string `json:"lenguaje"`
	Uso          string `json:"uso"`
}

// TrimSpace trims every field in place.
func (r *PromptRequest) TrimSpace() {
	r.Rol = strings.TrimSpace(r.Rol)
	r.Tarea = strings.TrimSpace(r.Tarea)
	r.Formato = strings.TrimSpace(r.Formato)
	r.Tono = strings.TrimSpace(r.Tono)
	r.Contexto = strings.TrimSpace(r.Contexto)
	r.Indicaciones = strings.TrimSpace(r.Indicaciones)
	r.Lenguaje = strings.TrimSpace(r.Lenguaje)
	r.Uso = strings.TrimSpace(r.Uso)
}
