package validator

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/promptkit/prompt-api/relay/model"
	"github.com/promptkit/prompt-api/relay/variant"
)

func TestValidatePromptRequest_Structured(t *testing.T) {
	tests := []struct {
		name    string
		req     model.PromptRequest
		missing string
	}{
		{
			name: "all present",
			req:  model.PromptRequest{Rol: "r", Tarea: "t", Formato: "f", Tono: "n"},
		},
		{
			name:    "missing rol",
			req:     model.PromptRequest{Tarea: "x", Formato: "y", Tono: "z"},
			missing: "rol",
		},
		{
			name:    "missing several keeps declaration order",
			req:     model.PromptRequest{Formato: "y", Contexto: "optional"},
			missing: "rol, tarea, tono",
		},
		{
			name:    "context is optional but does not satisfy required fields",
			req:     model.PromptRequest{Contexto: "c"},
			missing: "rol, tarea, formato, tono",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidatePromptRequest(variant.StructuredFields, &tt.req)
			if tt.missing == "" {
				require.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			require.Equal(t, http.StatusBadRequest, got.StatusCode)
			require.Equal(t, "Faltan campos requeridos: "+tt.missing, got.Message)
		})
	}
}

func TestValidatePromptRequest_Legacy(t *testing.T) {
	require.Nil(t, ValidatePromptRequest(variant.LegacyFields, &model.PromptRequest{Contexto: "c"}))
	require.Nil(t, ValidatePromptRequest(variant.LegacyFields, &model.PromptRequest{Uso: "u"}))

	got := ValidatePromptRequest(variant.LegacyFields, &model.PromptRequest{Indicaciones: "i", Lenguaje: "l"})
	require.NotNil(t, got)
	require.Equal(t, http.StatusBadRequest, got.StatusCode)
	require.Equal(t, LegacyMissingMessage, got.Message)
}

func TestMissingFieldsMessage(t *testing.T) {
	require.Equal(t, "Faltan campos requeridos: rol", MissingFieldsMessage([]string{"rol"}))
	require.Equal(t, "Faltan campos requeridos: rol, tono", MissingFieldsMessage([]string{"rol", "tono"}))
}
