package controller

import (
	"io"
	"net/http"
	"slices"

	"github.com/Laisky/errors/v2"
	"github.com/gin-gonic/gin"

	"github.com/promptkit/prompt-api/common/helper"
)

// maxBodyBytes bounds the form payload read in server mode.
const maxBodyBytes = 1 << 20

// Relay serves the prompt endpoint behind gin. The handler owns status, body
// and CORS headers; gin only carries bytes.
func (h *PromptHandler) Relay(c *gin.Context) {
	ev := Event{
		Method:    c.Request.Method,
		Headers:   flattenHeaders(c.Request.Header),
		RequestID: c.GetString(helper.RequestIdKey),
	}

	var resp Response
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		resp = h.fail(ctxLogger(ev.RequestID, h.profile), h.cors.Headers(ev.Headers["Origin"]),
			errors.Wrap(err, "read request body"))
	} else {
		ev.Body = string(body)
		resp = h.Handle(c.Request.Context(), ev)
	}

	writeResponse(c, resp)
}

func writeResponse(c *gin.Context, resp Response) {
	for k, v := range resp.Headers {
		// gzip may already have declared Vary: Accept-Encoding
		if k == "Vary" && c.Writer.Header().Get("Vary") != "" {
			if !slices.Contains(c.Writer.Header().Values("Vary"), v) {
				c.Writer.Header().Add("Vary", v)
			}
			continue
		}
		c.Header(k, v)
	}
	if resp.Body == "" {
		c.Status(resp.StatusCode)
		c.Writer.WriteHeaderNow()
		return
	}
	c.Data(resp.StatusCode, resp.Headers["Content-Type"], []byte(resp.Body))
}

// flattenHeaders keeps the first value of every header under its canonical name.
func flattenHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, vs := range h {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}
