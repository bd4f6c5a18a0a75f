package validator

import (
	"reflect"
	"strings"
	"sync"

	"github.com/Laisky/errors/v2"
	"github.com/go-playground/validator/v10"

	"github.com/promptkit/prompt-api/relay/model"
	"github.com/promptkit/prompt-api/relay/variant"
)

const (
	// LegacyMissingMessage is returned when neither contexto nor uso is present.
	LegacyMissingMessage = "Faltan datos. Envía al menos 'contexto' o 'uso'."
	// missingFieldsPrefix introduces the list of missing structured fields.
	missingFieldsPrefix = "Faltan campos requeridos: "
	// FieldDelimiter joins the names of missing fields.
	FieldDelimiter = ", "
)

type structuredForm struct {
	Rol     string `json:"rol" validate:"required"`
	Tarea   string `json:"tarea" validate:"required"`
	Formato string `json:"formato" validate:"required"`
	Tono    string `json:"tono" validate:"required"`
}

type legacyForm struct {
	Contexto string `json:"contexto" validate:"required_without=Uso"`
	Uso      string `json:"uso" validate:"required_without=Contexto"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Report fields by their JSON names so messages match what the caller sent.
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// ValidatePromptRequest checks the already-trimmed request against the field
// set of the active revision. A nil result means the request may proceed; a
// non-nil result is always a 400.
func ValidatePromptRequest(fields variant.FieldSet, req *model.PromptRequest) *model.ErrorWithStatusCode {
	switch fields {
	case variant.LegacyFields:
		err := getValidator().Struct(legacyForm{Contexto: req.Contexto, Uso: req.Uso})
		if err != nil {
			return model.NewBadRequest(LegacyMissingMessage)
		}
		return nil
	default:
		missing, err := missingFields(structuredForm{
			Rol:     req.Rol,
			Tarea:   req.Tarea,
			Formato: req.Formato,
			Tono:    req.Tono,
		})
		if err != nil {
			return model.NewBadRequest(err.Error())
		}
		if len(missing) > 0 {
			return model.NewBadRequest(MissingFieldsMessage(missing))
		}
		return nil
	}
}

// MissingFieldsMessage renders the 400 message naming the missing fields.
func MissingFieldsMessage(missing []string) string {
	return missingFieldsPrefix + strings.Join(missing, FieldDelimiter)
}

// missingFields returns the JSON names of empty required fields in
// declaration order.
func missingFields(form any) ([]string, error) {
	err := getValidator().Struct(form)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, errors.Wrap(err, "validate form")
	}

	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fe.Field())
	}
	return missing, nil
}
