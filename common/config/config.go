package config

import (
	"strings"

	"github.com/promptkit/prompt-api/common/env"
)

// DefaultCanonicalOrigin is the production front end served from CloudFront.
const DefaultCanonicalOrigin = "https://d24e3kao48qx0i.cloudfront.net"

var (
	// Region selects the AWS region hosting the Bedrock runtime endpoint.
	Region = env.String("AWS_REGION", "us-east-1")
	// ModelID is the Bedrock model (or inference profile) invoked for every request.
	ModelID = strings.TrimSpace(env.String("MODEL_ID", "anthropic.claude-3-haiku-20240307-v1:0"))
	// MaxTokens caps the tokens the model may generate per request.
	MaxTokens = func() int {
		v := env.Int("MAX_TOKENS", 400)
		if v <= 0 {
			panic("MAX_TOKENS must be positive")
		}
		return v
	}()
	// Temperature is forwarded as the Converse inference temperature.
	Temperature = env.Float64("TEMPERATURE", 0.5)
	// TopP is forwarded as the Converse nucleus-sampling probability.
	TopP = env.Float64("TOP_P", 0.9)

	// PromptVariant picks the handler revision: legacy, open or strict.
	PromptVariant = strings.ToLower(strings.TrimSpace(env.String("PROMPT_VARIANT", "strict")))

	// CanonicalOrigin is returned in Access-Control-Allow-Origin when the
	// request origin is not allow-listed.
	CanonicalOrigin = strings.TrimSpace(env.String("CANONICAL_ORIGIN", DefaultCanonicalOrigin))
	// AllowedOrigins lists front-end origins echoed back under the allow-list policy.
	AllowedOrigins = env.StringSlice("ALLOWED_ORIGINS", []string{DefaultCanonicalOrigin})

	// InferenceTimeout bounds a single Converse call (seconds). Zero keeps the SDK default.
	InferenceTimeout = env.Int("INFERENCE_TIMEOUT", 0)
	// BedrockCrossRegion rewrites ModelID into a cross-region inference profile when one exists.
	BedrockCrossRegion = env.Bool("BEDROCK_CROSS_REGION", false)
	// BedrockAccessKey and BedrockSecretKey pin static credentials; empty uses the default chain.
	BedrockAccessKey = env.String("BEDROCK_ACCESS_KEY", "")
	BedrockSecretKey = env.String("BEDROCK_SECRET_KEY", "")

	// LambdaPayloadVersion selects the API Gateway event shape: "2.0" for HTTP
	// APIs and function URLs, "1.0" for REST API proxy integrations.
	LambdaPayloadVersion = strings.TrimSpace(env.String("LAMBDA_PAYLOAD_VERSION", "2.0"))

	// ServerPort is the listen port for the standalone HTTP server.
	ServerPort = strings.TrimSpace(env.String("PORT", "3000"))
	// GinMode allows forcing Gin into debug mode without recompiling.
	GinMode = strings.TrimSpace(env.String("GIN_MODE", ""))
	// ShutdownTimeoutSec bounds graceful shutdown of the HTTP server (seconds).
	ShutdownTimeoutSec = env.Int("SHUTDOWN_TIMEOUT", 30)

	// DebugEnabled toggles verbose structured logging when DEBUG=true.
	DebugEnabled = env.Bool("DEBUG", false)
	// EnablePrometheusMetrics exposes /metrics in server mode.
	EnablePrometheusMetrics = env.Bool("ENABLE_PROMETHEUS_METRICS", true)

	// LogPushAPI defines the webhook endpoint for escalated log alerts.
	LogPushAPI = env.String("LOG_PUSH_API", "")
	// LogPushType labels outbound log alerts so downstream processors can route them.
	LogPushType = env.String("LOG_PUSH_TYPE", "")
	// LogPushToken authenticates outbound log alert requests.
	LogPushToken = env.String("LOG_PUSH_TOKEN", "")
)

// IsLambda reports whether the process runs inside the AWS Lambda runtime.
func IsLambda() bool {
	return env.String("AWS_LAMBDA_FUNCTION_NAME", "") != "" ||
		env.String("AWS_LAMBDA_RUNTIME_API", "") != ""
}
