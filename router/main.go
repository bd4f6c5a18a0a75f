package router

import (
	gmw "github.com/Laisky/gin-middlewares/v6"
	glog "github.com/Laisky/go-utils/v5/log"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/promptkit/prompt-api/common/config"
	"github.com/promptkit/prompt-api/common/graceful"
	"github.com/promptkit/prompt-api/common/logger"
	"github.com/promptkit/prompt-api/controller"
	"github.com/promptkit/prompt-api/middleware"
)

// SetRouter installs the middleware chain and routes of the standalone server.
// The prompt endpoint answers on "/" and "/prompt" so the same front end
// works against a function URL and a path-routed gateway.
func SetRouter(server *gin.Engine, h *controller.PromptHandler, policy *middleware.CORSPolicy, status controller.Status) {
	logLevel := glog.LevelInfo
	if config.DebugEnabled {
		logLevel = glog.LevelDebug
	}

	server.RedirectTrailingSlash = false
	server.Use(
		middleware.RequestId(),
		middleware.CORS(policy),
		middleware.RelayPanicRecover(h.Profile()),
		graceful.GinRequestTracker(),
		gmw.NewLoggerMiddleware(
			gmw.WithLevel(logLevel.String()),
			gmw.WithLogger(logger.Logger.Named("gin")),
		),
		gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})),
	)

	for _, path := range []string{"/", "/prompt"} {
		server.POST(path, h.Relay)
		server.OPTIONS(path, h.Relay)
	}

	server.GET("/healthz", controller.GetStatus(status))
	if config.EnablePrometheusMetrics {
		server.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	server.NoRoute(controller.RelayNotFound)
}
