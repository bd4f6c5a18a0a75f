package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/promptkit/prompt-api/relay/model"
	"github.com/promptkit/prompt-api/relay/variant"
)

const foreignOrigin = "https://smoke.invalid"

// smokeCase is one request plus the checks its response must satisfy.
type smokeCase struct {
	Name   string
	Method string
	Origin string
	Body   string
	Expect func(cfg config, status int, headers http.Header, body []byte) (bool, string)
}

func casesFor(cfg config) []smokeCase {
	cases := []smokeCase{
		{
			Name:   "preflight",
			Method: http.MethodOptions,
			Origin: cfg.Origin,
			Expect: expectPreflight(cfg.Origin),
		},
		{
			Name:   "missing_fields",
			Method: http.MethodPost,
			Origin: cfg.Origin,
			Body:   "{}",
			Expect: expectStatusWithError(http.StatusBadRequest),
		},
	}

	if cfg.Variant == variant.Strict {
		cases = append(cases, smokeCase{
			Name:   "foreign_origin",
			Method: http.MethodOptions,
			Origin: foreignOrigin,
			Expect: expectPreflight(cfg.Canonical),
		})
	}

	if !cfg.SkipGenerate {
		cases = append(cases, smokeCase{
			Name:   "generate",
			Method: http.MethodPost,
			Origin: cfg.Origin,
			Body:   sampleForm(cfg.Variant),
			Expect: expectPrompt,
		})
	}

	return cases
}

func sampleForm(name variant.Name) string {
	form := model.PromptRequest{
		Rol:      "analista de datos",
		Tarea:    "resumir un informe trimestral de ventas",
		Formato:  "lista con viñetas",
		Tono:     "profesional",
		Contexto: "empresa minorista con tres sucursales",
	}
	if name == variant.Legacy {
		form = model.PromptRequest{
			Contexto: "empresa minorista con tres sucursales",
			Uso:      "resumir un informe trimestral de ventas",
		}
	}
	b, _ := json.Marshal(form)
	return string(b)
}

func expectPreflight(wantOrigin string) func(config, int, http.Header, []byte) (bool, string) {
	return func(_ config, status int, headers http.Header, body []byte) (bool, string) {
		if status != http.StatusOK {
			return false, fmt.Sprintf("status %d, want 200", status)
		}
		if len(strings.TrimSpace(string(body))) != 0 {
			return false, "preflight body is not empty"
		}
		if got := headers.Get("Access-Control-Allow-Origin"); got != wantOrigin {
			return false, fmt.Sprintf("allow-origin %q, want %q", got, wantOrigin)
		}
		return true, ""
	}
}

func expectStatusWithError(want int) func(config, int, http.Header, []byte) (bool, string) {
	return func(_ config, status int, _ http.Header, body []byte) (bool, string) {
		if status != want {
			return false, fmt.Sprintf("status %d, want %d", status, want)
		}
		var out model.ErrorResponse
		if err := json.Unmarshal(body, &out); err != nil {
			return false, fmt.Sprintf("decode error body: %v", err)
		}
		if out.Error == "" {
			return false, "error message is empty"
		}
		return true, ""
	}
}

func expectPrompt(_ config, status int, _ http.Header, body []byte) (bool, string) {
	if status != http.StatusOK {
		return false, fmt.Sprintf("status %d, want 200", status)
	}
	var out model.PromptResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return false, fmt.Sprintf("decode prompt body: %v", err)
	}
	if strings.TrimSpace(out.Prompt) == "" {
		return false, "prompt is empty"
	}
	return true, ""
}
