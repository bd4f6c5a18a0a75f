package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"golang.org/x/sync/errgroup"

	"github.com/promptkit/prompt-api/common/config"
	"github.com/promptkit/prompt-api/common/graceful"
	"github.com/promptkit/prompt-api/common/logger"
	"github.com/promptkit/prompt-api/controller"
	"github.com/promptkit/prompt-api/middleware"
	"github.com/promptkit/prompt-api/relay/adaptor/aws"
	"github.com/promptkit/prompt-api/relay/variant"
	"github.com/promptkit/prompt-api/router"
)

func main() {
	ctx := context.Background()

	// Setup enhanced logger with alertPusher integration
	logger.SetupEnhancedLogger(ctx)

	profile, err := variant.Get(config.PromptVariant)
	if err != nil {
		logger.Logger.Fatal("invalid PROMPT_VARIANT", zap.Error(err))
	}

	policy := middleware.NewCORSPolicy(profile.Origin, config.AllowedOrigins, config.CanonicalOrigin)

	// The Bedrock client is created once per process and reused by every
	// invocation a warm Lambda container serves.
	client, err := aws.NewClient(ctx, aws.ClientConfig{
		Region: config.Region,
		AK:     config.BedrockAccessKey,
		SK:     config.BedrockSecretKey,
	})
	if err != nil {
		logger.Logger.Fatal("failed to create bedrock client", zap.Error(err))
	}

	opts := []aws.AdaptorOption{}
	if config.InferenceTimeout > 0 {
		opts = append(opts, aws.WithTimeout(time.Duration(config.InferenceTimeout)*time.Second))
	}
	if config.BedrockCrossRegion {
		opts = append(opts, aws.WithCrossRegionProfile(config.Region))
	}
	adaptor := aws.NewAdaptor(client, config.ModelID, aws.InferenceConfig{
		MaxTokens:   config.MaxTokens,
		Temperature: config.Temperature,
		TopP:        config.TopP,
	}, opts...)

	handler := controller.NewPromptHandler(profile, policy, adaptor, config.MaxTokens)

	logger.Logger.Info("prompt-api started",
		zap.String("variant", string(profile.Name)),
		zap.String("model_id", adaptor.ModelID),
		zap.String("region", config.Region),
		zap.Bool("lambda", config.IsLambda()),
	)

	if config.IsLambda() {
		startLambda(handler)
		return
	}

	if err := serve(handler, policy, controller.Status{
		Variant: string(profile.Name),
		ModelID: adaptor.ModelID,
		Region:  config.Region,
	}); err != nil {
		logger.Logger.Fatal("server stopped", zap.Error(err))
	}
}

func startLambda(handler *controller.PromptHandler) {
	switch config.LambdaPayloadVersion {
	case "1.0":
		lambda.Start(handler.HandleLambdaV1)
	case "2.0":
		lambda.Start(handler.HandleLambda)
	default:
		logger.Logger.Fatal("unsupported LAMBDA_PAYLOAD_VERSION",
			zap.String("version", config.LambdaPayloadVersion))
	}
}

// serve runs the gin server until SIGINT/SIGTERM, then stops accepting
// connections and drains in-flight requests.
func serve(handler *controller.PromptHandler, policy *middleware.CORSPolicy, status controller.Status) error {
	if config.GinMode != gin.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	router.SetRouter(engine, handler, policy, status)

	srv := &http.Server{
		Addr:              ":" + config.ServerPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		logger.Logger.Info("server started", zap.String("address", "http://localhost:"+config.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "listen and serve")
		}
		return nil
	})
	grp.Go(func() error {
		<-grpCtx.Done()
		graceful.SetDraining()
		logger.Logger.Info("shutting down", zap.Int64("in_flight_requests", graceful.InFlight()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(),
			time.Duration(config.ShutdownTimeoutSec)*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "shutdown server")
		}
		return graceful.Drain(shutdownCtx)
	})

	return grp.Wait()
}
