// Package variant describes the handler revisions that can be selected at
// process start. Each revision differs in required fields, prompt wording,
// trim limits and CORS strictness; everything else is shared.
package variant

import (
	"strings"

	"github.com/Laisky/errors/v2"
)

// Name identifies a handler revision.
type Name string

const (
	// Legacy accepts contexto/indicaciones/lenguaje/uso and echoes any origin.
	Legacy Name = "legacy"
	// Open accepts rol/tarea/formato/tono/contexto and echoes any origin.
	Open Name = "open"
	// Strict accepts the same form as Open but validates origins against an
	// allow-list and reports blank model output as 502.
	Strict Name = "strict"
)

// FieldSet selects the request form a revision understands.
type FieldSet int

const (
	// LegacyFields requires contexto or uso.
	LegacyFields FieldSet = iota
	// StructuredFields requires rol, tarea, formato and tono.
	StructuredFields
)

// OriginMode selects how Access-Control-Allow-Origin is computed.
type OriginMode int

const (
	// EchoOrigin reflects the request origin, or "*" when absent.
	EchoOrigin OriginMode = iota
	// AllowListOrigin reflects allow-listed origins and falls back to the canonical one.
	AllowListOrigin
)

// Profile is the immutable switch set for one revision.
type Profile struct {
	Name   Name
	Fields FieldSet
	Origin OriginMode

	// PromptCharLimit caps the user instruction sent upstream.
	PromptCharLimit int
	// OutputCharLimit caps the generated prompt returned to the caller.
	OutputCharLimit int

	// RejectEmptyOutput turns a blank model answer into a 502.
	RejectEmptyOutput bool
	// DetailedErrors renders 500s as {"error":"lambda_error","detail":...}.
	DetailedErrors bool
}

var profiles = map[Name]Profile{
	Legacy: {
		Name:            Legacy,
		Fields:          LegacyFields,
		Origin:          EchoOrigin,
		PromptCharLimit: 3000,
		OutputCharLimit: 3000,
	},
	Open: {
		Name:            Open,
		Fields:          StructuredFields,
		Origin:          EchoOrigin,
		PromptCharLimit: 3000,
		OutputCharLimit: 3000,
	},
	Strict: {
		Name:              Strict,
		Fields:            StructuredFields,
		Origin:            AllowListOrigin,
		PromptCharLimit:   4000,
		OutputCharLimit:   4000,
		RejectEmptyOutput: true,
		DetailedErrors:    true,
	},
}

// Get returns the profile registered under name (case-insensitive).
func Get(name string) (Profile, error) {
	p, ok := profiles[Name(strings.ToLower(strings.TrimSpace(name)))]
	if !ok {
		return Profile{}, errors.Errorf("unknown prompt variant %q", name)
	}
	return p, nil
}

// MustGet is Get for process start-up, where an unknown variant is fatal.
func MustGet(name string) Profile {
	p, err := Get(name)
	if err != nil {
		panic(err)
	}
	return p
}
