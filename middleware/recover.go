package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	"github.com/promptkit/prompt-api/common/logger"
	"github.com/promptkit/prompt-api/relay/model"
	"github.com/promptkit/prompt-api/relay/variant"
)

// RelayPanicRecover turns a panic escaping the handler chain into the
// revision's 500 body. CORS headers are already set by CORS, which must run
// first.
func RelayPanicRecover(profile variant.Profile) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Logger.Error("panic detected",
					zap.Any("panic", err),
					zap.String("stacktrace", string(debug.Stack())),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path))

				body := model.ErrorResponse{Error: fmt.Sprintf("panic: %v", err)}
				if profile.DetailedErrors {
					body = model.ErrorResponse{Error: model.ErrorCodeLambda, Detail: fmt.Sprintf("panic: %v", err)}
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, body)
			}
		}()
		c.Next()
	}
}
