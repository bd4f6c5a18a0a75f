package graceful

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestDrainReturnsWhenIdle(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, Drain(ctx))
}

func TestDrainWaitsForInFlightRequests(t *testing.T) {
	done := BeginRequest()
	require.EqualValues(t, 1, InFlight())

	go func() {
		time.Sleep(150 * time.Millisecond)
		done()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, Drain(ctx))
	require.EqualValues(t, 0, InFlight())
}

func TestDrainTimeout(t *testing.T) {
	done := BeginRequest()
	defer done()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, Drain(ctx), context.DeadlineExceeded)
}

func TestGinRequestTracker(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(GinRequestTracker())

	var during int64
	engine.GET("/", func(c *gin.Context) {
		during = InFlight()
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusNoContent, w.Code)
	require.EqualValues(t, 1, during)
	require.EqualValues(t, 0, InFlight())
}

func TestDrainingFlag(t *testing.T) {
	require.False(t, IsDraining())
	SetDraining()
	require.True(t, IsDraining())
	draining.Store(false)
}
