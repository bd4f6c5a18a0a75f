package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/promptkit/prompt-api/controller"
	"github.com/promptkit/prompt-api/middleware"
	bedrock "github.com/promptkit/prompt-api/relay/adaptor/aws"
	"github.com/promptkit/prompt-api/relay/variant"
)

const front = "https://d24e3kao48qx0i.cloudfront.net"

type stubGenerator struct{}

func (stubGenerator) Generate(context.Context, string, string) (*bedrock.Result, error) {
	return &bedrock.Result{Fragments: []string{"Actúa como ", "experto."}}, nil
}

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	profile := variant.MustGet("strict")
	policy := middleware.NewCORSPolicy(profile.Origin, []string{front}, front)
	h := controller.NewPromptHandler(profile, policy, stubGenerator{}, 400)

	engine := gin.New()
	SetRouter(engine, h, policy, controller.Status{Variant: "strict"})
	return engine
}

const form = `{"rol":"experto","tarea":"resumir","formato":"lista","tono":"formal"}`

func TestPromptRoutes(t *testing.T) {
	engine := newEngine(t)

	for _, path := range []string{"/", "/prompt"} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form))
		req.Header.Set("Origin", front)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, path)
		require.JSONEq(t, `{"prompt":"Actúa como experto."}`, w.Body.String())
		require.Equal(t, front, w.Header().Get("Access-Control-Allow-Origin"))
		require.NotEmpty(t, w.Header().Get("X-Request-Id"))
		require.Contains(t, w.Header().Values("Vary"), "Origin")
	}
}

func TestRequestIDPropagated(t *testing.T) {
	engine := newEngine(t)

	req := httptest.NewRequest(http.MethodOptions, "/prompt", nil)
	req.Header.Set("X-Request-Id", "abc123")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "abc123", w.Header().Get("X-Request-Id"))
	require.Equal(t, front, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNotFoundCarriesCORS(t *testing.T) {
	engine := newEngine(t)

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set("Origin", "https://evil.example")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, front, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHealthz(t *testing.T) {
	engine := newEngine(t)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"success":true`)
}
