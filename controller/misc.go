package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/promptkit/prompt-api/common/graceful"
	"github.com/promptkit/prompt-api/relay/model"
)

var startTime = time.Now()

// Status describes the running deployment.
type Status struct {
	Variant   string `json:"variant"`
	ModelID   string `json:"model_id"`
	Region    string `json:"region"`
	StartTime int64  `json:"start_time"`
	InFlight  int64  `json:"in_flight"`
}

// GetStatus reports liveness. A draining server answers 503 so load
// balancers stop routing to it.
func GetStatus(status Status) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := status
		status.StartTime = startTime.Unix()
		status.InFlight = graceful.InFlight()

		code := http.StatusOK
		if graceful.IsDraining() {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"success": code == http.StatusOK,
			"data":    status,
		})
	}
}

func RelayNotFound(c *gin.Context) {
	msg := fmt.Sprintf("Invalid URL (%s %s)", c.Request.Method, c.Request.URL.Path)
	c.JSON(http.StatusNotFound, model.ErrorResponse{Error: msg})
}
