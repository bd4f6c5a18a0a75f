package controller

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
	glog "github.com/Laisky/go-utils/v5/log"
	"github.com/Laisky/zap"

	"github.com/promptkit/prompt-api/common/logger"
	"github.com/promptkit/prompt-api/middleware"
	"github.com/promptkit/prompt-api/monitor"
	bedrock "github.com/promptkit/prompt-api/relay/adaptor/aws"
	"github.com/promptkit/prompt-api/relay/model"
	"github.com/promptkit/prompt-api/relay/prompt"
	"github.com/promptkit/prompt-api/relay/validator"
	"github.com/promptkit/prompt-api/relay/variant"
)

// EmptyOutputMessage is the 502 message for a blank model answer.
const EmptyOutputMessage = "El modelo devolvió una respuesta vacía."

// Generator is the inference collaborator.
type Generator interface {
	Generate(ctx context.Context, system, user string) (*bedrock.Result, error)
}

// Event is a transport-neutral inbound HTTP request.
type Event struct {
	Method          string
	Headers         map[string]string
	Body            string
	IsBase64Encoded bool
	RequestID       string
}

// Response is a transport-neutral HTTP response. Body is empty for preflights.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}

// PromptHandler validates a form, asks the model for a reusable prompt and
// renders the JSON answer. It holds no per-request state and is safe for
// concurrent use.
type PromptHandler struct {
	profile   variant.Profile
	cors      *middleware.CORSPolicy
	generator Generator
	system    string
}

// NewPromptHandler binds a revision profile to its collaborator.
func NewPromptHandler(profile variant.Profile, cors *middleware.CORSPolicy, generator Generator, maxTokens int) *PromptHandler {
	return &PromptHandler{
		profile:   profile,
		cors:      cors,
		generator: generator,
		system:    prompt.SystemInstruction(profile.Name, maxTokens),
	}
}

// Profile returns the revision served by h.
func (h *PromptHandler) Profile() variant.Profile { return h.profile }

// Handle produces exactly one response for ev. Every response, including
// recovered panics, carries the CORS headers resolved from ev's origin.
func (h *PromptHandler) Handle(ctx context.Context, ev Event) (resp Response) {
	start := time.Now()
	headers := h.cors.Headers(middleware.HeaderValue(ev.Headers, "Origin"))
	lg := ctxLogger(ev.RequestID, h.profile)

	defer func() {
		if r := recover(); r != nil {
			resp = h.fail(lg, headers, errors.Errorf("panic: %v", r))
		}
		method := ev.Method
		if method == "" {
			method = "INVOKE"
		}
		monitor.RecordRequest(string(h.profile.Name), method, resp.StatusCode, time.Since(start))
	}()

	if strings.EqualFold(ev.Method, http.MethodOptions) {
		return Response{StatusCode: http.StatusOK, Headers: headers}
	}

	text, err := h.generate(ctx, ev)
	if err != nil {
		return h.fail(lg, headers, err)
	}

	lg.Info("prompt generated", zap.Int("chars", len([]rune(text))))
	return jsonResponse(http.StatusOK, headers, model.PromptResponse{Prompt: text})
}

func (h *PromptHandler) generate(ctx context.Context, ev Event) (string, error) {
	req, err := decodeBody(ev)
	if err != nil {
		return "", err
	}

	if verr := validator.ValidatePromptRequest(h.profile.Fields, req); verr != nil {
		return "", verr
	}

	user := prompt.BuildUserInstruction(h.profile, req)
	result, err := h.generator.Generate(ctx, h.system, user)
	if err != nil {
		return "", err
	}

	text := prompt.SafeTrim(result.Text(), h.profile.OutputCharLimit)
	if text == "" && h.profile.RejectEmptyOutput {
		return "", model.NewBadGateway(EmptyOutputMessage)
	}
	return text, nil
}

// fail renders err. Classified errors keep their status and message; anything
// else is a 500 exposing the raw error text.
func (h *PromptHandler) fail(lg glog.Logger, headers map[string]string, err error) Response {
	var statusErr *model.ErrorWithStatusCode
	if errors.As(err, &statusErr) {
		lg.Info("request rejected",
			zap.Int("status_code", statusErr.StatusCode),
			zap.String("reason", statusErr.Message))
		return jsonResponse(statusErr.StatusCode, headers, model.ErrorResponse{Error: statusErr.Message})
	}

	if h.profile.DetailedErrors {
		lg.Error("prompt generation failed", zap.Error(err), zap.String("detail", fmt.Sprintf("%+v", err)))
		return jsonResponse(http.StatusInternalServerError, headers,
			model.ErrorResponse{Error: model.ErrorCodeLambda, Detail: err.Error()})
	}

	lg.Warn("prompt generation failed", zap.Error(err))
	return jsonResponse(http.StatusInternalServerError, headers, model.ErrorResponse{Error: err.Error()})
}

func ctxLogger(requestID string, profile variant.Profile) glog.Logger {
	return logger.Logger.With(
		zap.String("request_id", requestID),
		zap.String("variant", string(profile.Name)),
	)
}

func decodeBody(ev Event) (*model.PromptRequest, error) {
	body := ev.Body
	if ev.IsBase64Encoded {
		raw, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return nil, errors.Wrap(err, "decode base64 body")
		}
		body = string(raw)
	}
	if strings.TrimSpace(body) == "" {
		body = "{}"
	}

	req := new(model.PromptRequest)
	if err := json.Unmarshal([]byte(body), req); err != nil {
		return nil, errors.Wrap(err, "parse request body")
	}
	req.TrimSpace()
	return req, nil
}

// jsonResponse encodes v without HTML escaping so accents and markup in the
// generated prompt reach the browser verbatim.
func jsonResponse(status int, headers map[string]string, v any) Response {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		status = http.StatusInternalServerError
		buf.Reset()
		buf.WriteString(`{"error":"lambda_error"}`)
	}
	return Response{
		StatusCode: status,
		Headers:    headers,
		Body:       strings.TrimSuffix(buf.String(), "\n"),
	}
}
