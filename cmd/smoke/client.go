package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type caseResult struct {
	Name         string
	Success      bool
	StatusCode   int
	Duration     time.Duration
	ErrorReason  string
	ResponseBody string
}

// performCase sends one smoke request and evaluates the response.
func performCase(ctx context.Context, client *http.Client, cfg config, c smokeCase) (result caseResult) {
	start := time.Now()
	result = caseResult{Name: c.Name}
	defer func() {
		result.Duration = time.Since(start)
	}()

	var body io.Reader
	if c.Body != "" {
		body = strings.NewReader(c.Body)
	}
	req, err := http.NewRequestWithContext(ctx, c.Method, cfg.APIBase, body)
	if err != nil {
		result.ErrorReason = fmt.Sprintf("build request: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "prompt-api-smoke/1.0")
	if c.Origin != "" {
		req.Header.Set("Origin", c.Origin)
	}

	resp, err := client.Do(req)
	if err != nil {
		result.ErrorReason = fmt.Sprintf("do request: %v", err)
		return
	}
	defer resp.Body.Close()

	result.StatusCode = resp.StatusCode
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		result.ErrorReason = fmt.Sprintf("read body: %v", err)
		return
	}
	result.ResponseBody = truncateString(string(data), maxLoggedBodyBytes)

	result.Success, result.ErrorReason = c.Expect(cfg, resp.StatusCode, resp.Header, data)
	return
}

func truncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
