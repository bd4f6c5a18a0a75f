package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/promptkit/prompt-api/common/helper"
)

// RequestId reuses an inbound X-Request-Id or mints one, and echoes it back.
func RequestId() func(c *gin.Context) {
	return func(c *gin.Context) {
		id := c.GetHeader(helper.RequestIdKey)
		if id == "" {
			id = helper.GenRequestID()
		}
		c.Set(helper.RequestIdKey, id)
		c.Header(helper.RequestIdKey, id)
		c.Next()
	}
}
