package prompt

import (
	"fmt"

	"github.com/promptkit/prompt-api/relay/variant"
)

const legacySystemPrompt = "Eres un generador de prompts. Devuelve SOLO el prompt final, claro, " +
	"accionable y conciso, sin explicaciones. No excedas el límite."

const openSystemPrompt = `Eres un ingeniero de prompts. Tu única salida es un prompt final, listo para copiar y usar en otro modelo de lenguaje.
Reglas:
- Devuelve SOLO el prompt, sin introducciones, explicaciones ni comentarios.
- No resuelvas la tarea: escribe las instrucciones para que otro modelo la resuelva.
- Respeta el rol, la tarea, el formato y el tono indicados.
- No excedas %d tokens.`

const strictSystemPrompt = `Eres un ingeniero de prompts. Tu única salida es un prompt final, listo para copiar y usar en otro modelo de lenguaje.
Reglas:
- Devuelve SOLO el prompt, sin introducciones, explicaciones, notas ni metacomentarios.
- Nunca entregues la respuesta a la tarea ni ejemplos resueltos: escribe las instrucciones para que otro modelo la resuelva.
- Integra el rol, la tarea, el formato, el tono y el contexto indicados.
- Varía la estructura según la tarea (párrafos, pasos numerados, secciones o criterios); no repitas siempre la misma plantilla.
- No excedas %d tokens.`

// SystemInstruction returns the fixed output contract for a revision. The
// token bound is stated to the model only; nothing enforces it in tokens.
func SystemInstruction(name variant.Name, maxTokens int) string {
	switch name {
	case variant.Legacy:
		return legacySystemPrompt
	case variant.Open:
		return fmt.Sprintf(openSystemPrompt, maxTokens)
	default:
		return fmt.Sprintf(strictSystemPrompt, maxTokens)
	}
}
