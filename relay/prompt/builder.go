package prompt

import (
	"fmt"

	"github.com/promptkit/prompt-api/relay/model"
	"github.com/promptkit/prompt-api/relay/variant"
)

const (
	// DefaultIndicaciones is used by the legacy form when indicaciones is empty.
	DefaultIndicaciones = "No excedas 400 tokens."
	// DefaultLenguaje is used by the legacy form when lenguaje is empty.
	DefaultLenguaje = "Español"
	// NoContextPlaceholder stands in for an empty contexto in structured forms.
	NoContextPlaceholder = "(sin contexto adicional)"
)

const legacyTemplate = `
[OBJETIVO]
Generar un prompt utilizable por otro modelo.

[CONTEXTO]
%s

[REQUISITOS]
%s

[IDIOMA]
%s
`

const structuredTemplate = `
Genera un prompt reutilizable para la siguiente tarea.

[ROL]
%s

[TAREA]
%s

[FORMATO DE SALIDA]
%s

[TONO]
%s

[CONTEXTO]
%s
`

// BuildUserInstruction interpolates a validated, trimmed request into the
// revision's template and applies SafeTrim with the revision's prompt cap.
func BuildUserInstruction(profile variant.Profile, req *model.PromptRequest) string {
	var text string
	switch profile.Fields {
	case variant.LegacyFields:
		text = req.Uso
		if text == "" {
			text = fmt.Sprintf(legacyTemplate,
				req.Contexto,
				orDefault(req.Indicaciones, DefaultIndicaciones),
				orDefault(req.Lenguaje, DefaultLenguaje))
		}
	default:
		text = fmt.Sprintf(structuredTemplate,
			req.Rol,
			req.Tarea,
			req.Formato,
			req.Tono,
			orDefault(req.Contexto, NoContextPlaceholder))
	}

	return SafeTrim(text, profile.PromptCharLimit)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
