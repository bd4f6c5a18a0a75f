package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/promptkit/prompt-api/relay/variant"
)

const (
	allowHeaders = "Content-Type"
	allowMethods = "OPTIONS,POST"
	anyOrigin    = "*"
)

// CORSPolicy resolves the Access-Control-* headers attached to every
// response. It is built once at start-up and never mutated.
type CORSPolicy struct {
	mode     variant.OriginMode
	allowed  map[string]struct{}
	fallback string
}

// NewCORSPolicy builds a policy. allowed and fallback only matter for
// variant.AllowListOrigin.
func NewCORSPolicy(mode variant.OriginMode, allowed []string, fallback string) *CORSPolicy {
	p := &CORSPolicy{
		mode:     mode,
		allowed:  make(map[string]struct{}, len(allowed)),
		fallback: fallback,
	}
	for _, origin := range allowed {
		if origin = strings.TrimSpace(origin); origin != "" {
			p.allowed[origin] = struct{}{}
		}
	}
	return p
}

// AllowOrigin returns the Access-Control-Allow-Origin value for origin.
func (p *CORSPolicy) AllowOrigin(origin string) string {
	switch p.mode {
	case variant.AllowListOrigin:
		if _, ok := p.allowed[origin]; ok {
			return origin
		}
		return p.fallback
	default:
		if origin == "" {
			return anyOrigin
		}
		return origin
	}
}

// Headers returns the full response header set for a request from origin.
func (p *CORSPolicy) Headers(origin string) map[string]string {
	headers := map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  p.AllowOrigin(origin),
		"Access-Control-Allow-Headers": allowHeaders,
		"Access-Control-Allow-Methods": allowMethods,
	}
	if p.mode == variant.AllowListOrigin {
		headers["Vary"] = "Origin"
	}
	return headers
}

// HeaderValue looks name up case-insensitively in a flat header map.
func HeaderValue(headers map[string]string, name string) string {
	if v, ok := headers[name]; ok {
		return v
	}
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// CORS writes the policy headers on every gin response, including 404s and
// recovered panics.
func CORS(p *CORSPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		for k, v := range p.Headers(c.GetHeader("Origin")) {
			c.Header(k, v)
		}
		c.Next()
	}
}
