package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/promptkit/prompt-api/controller"
	"github.com/promptkit/prompt-api/middleware"
	bedrock "github.com/promptkit/prompt-api/relay/adaptor/aws"
	"github.com/promptkit/prompt-api/relay/variant"
)

type stubGenerator struct{ text string }

func (s stubGenerator) Generate(context.Context, string, string) (*bedrock.Result, error) {
	return &bedrock.Result{Fragments: []string{s.text}}, nil
}

func newServer(t *testing.T, name variant.Name, text string) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	profile := variant.MustGet(string(name))
	policy := middleware.NewCORSPolicy(profile.Origin, []string{"https://front.example"}, "https://front.example")
	h := controller.NewPromptHandler(profile, policy, stubGenerator{text: text}, 400)

	engine := gin.New()
	engine.POST("/", h.Relay)
	engine.OPTIONS("/", h.Relay)

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)
	return srv
}

func sweep(t *testing.T, cfg config) report {
	t.Helper()
	cases := casesFor(cfg)
	client := &http.Client{Timeout: 5 * time.Second}

	var results []caseResult
	for _, c := range cases {
		results = append(results, performCase(context.Background(), client, cfg, c))
	}
	return buildReport(cases, results)
}

func TestSweepStrictPasses(t *testing.T) {
	srv := newServer(t, variant.Strict, "Actúa como analista...")
	cfg := config{
		APIBase:   srv.URL,
		Variant:   variant.Strict,
		Origin:    "https://front.example",
		Canonical: "https://front.example",
	}

	rep := sweep(t, cfg)
	if len(rep.rows) != 4 {
		t.Fatalf("rows = %d, want 4", len(rep.rows))
	}
	if rep.failedCount != 0 {
		for _, row := range rep.rows {
			t.Logf("%s: %s", row.Name, row.ErrorReason)
		}
		t.Fatalf("failed = %d, want 0", rep.failedCount)
	}
}

func TestSweepDetectsEmptyPrompt(t *testing.T) {
	srv := newServer(t, variant.Open, "")
	cfg := config{APIBase: srv.URL, Variant: variant.Open, Origin: "https://front.example"}

	rep := sweep(t, cfg)
	if rep.failedCount != 1 {
		t.Fatalf("failed = %d, want 1", rep.failedCount)
	}
	last := rep.rows[len(rep.rows)-1]
	if last.Name != "generate" || last.Success {
		t.Fatalf("unexpected last row %+v", last)
	}
}

func TestSweepLegacySkipGenerate(t *testing.T) {
	srv := newServer(t, variant.Legacy, "ok")
	cfg := config{APIBase: srv.URL, Variant: variant.Legacy, Origin: "https://any.example", SkipGenerate: true}

	rep := sweep(t, cfg)
	if len(rep.rows) != 2 || rep.failedCount != 0 {
		t.Fatalf("rows = %d failed = %d", len(rep.rows), rep.failedCount)
	}
}

func TestBuildReportMarksMissing(t *testing.T) {
	cases := []smokeCase{{Name: "a"}, {Name: "b"}}
	rep := buildReport(cases, []caseResult{{Name: "a", Success: true}})
	if rep.failedCount != 1 || rep.rows[1].ErrorReason != "not executed" {
		t.Fatalf("unexpected report %+v", rep)
	}
}

func TestRenderReport(t *testing.T) {
	var buf bytes.Buffer
	renderReport(&buf, report{rows: []caseResult{{Name: "preflight", Success: true, StatusCode: 200}}})
	out := buf.String()
	if !strings.Contains(out, "preflight") || !strings.Contains(out, "PASS") {
		t.Fatalf("unexpected table:\n%s", out)
	}
}

func TestTruncateString(t *testing.T) {
	if got := truncateString("abcdef", 3); got != "abc..." {
		t.Fatalf("truncateString = %q", got)
	}
	if got := truncateString("ab", 3); got != "ab" {
		t.Fatalf("truncateString = %q", got)
	}
}
