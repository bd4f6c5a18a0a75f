package aws

import (
	"context"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"github.com/promptkit/prompt-api/common/helper"
	"github.com/promptkit/prompt-api/common/logger"
	"github.com/promptkit/prompt-api/monitor"
	"github.com/promptkit/prompt-api/relay/adaptor/aws/utils"
)

// Converser is the part of *bedrockruntime.Client the handler depends on.
type Converser interface {
	Converse(ctx context.Context, params *bedrockruntime.ConverseInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error)
}

var _ Converser = (*bedrockruntime.Client)(nil)

// ClientConfig selects region and, optionally, static credentials.
type ClientConfig struct {
	Region string
	AK     string
	SK     string
}

// NewClient builds the long-lived Bedrock runtime client. Without AK/SK the
// default credential chain (Lambda execution role, env, profile) is used.
func NewClient(ctx context.Context, cfg ClientConfig) (*bedrockruntime.Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.AK != "" && cfg.SK != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AK, cfg.SK, "")))
	}

	defaultConfig, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "load aws config")
	}
	return bedrockruntime.NewFromConfig(defaultConfig), nil
}

// Adaptor turns a system/user instruction pair into one Converse round trip.
type Adaptor struct {
	Client          Converser
	ModelID         string
	InferenceConfig InferenceConfig
	// Timeout bounds a single call; zero leaves the caller's context untouched.
	Timeout time.Duration
}

// AdaptorOption customizes NewAdaptor.
type AdaptorOption func(*Adaptor)

// WithTimeout bounds each Converse call.
func WithTimeout(d time.Duration) AdaptorOption {
	return func(a *Adaptor) { a.Timeout = d }
}

// WithCrossRegionProfile rewrites the model id into the cross-region
// inference profile for region, when Bedrock publishes one.
func WithCrossRegionProfile(region string) AdaptorOption {
	return func(a *Adaptor) {
		a.ModelID = utils.ConvertModelID2CrossRegionProfile(a.ModelID, region)
	}
}

// NewAdaptor wires a client with the process-wide model settings.
func NewAdaptor(client Converser, modelID string, inference InferenceConfig, opts ...AdaptorOption) *Adaptor {
	a := &Adaptor{
		Client:          client,
		ModelID:         strings.TrimSpace(modelID),
		InferenceConfig: inference,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Generate performs the blocking inference call and returns the text
// fragments in the order the model produced them.
func (a *Adaptor) Generate(ctx context.Context, system, user string) (*Result, error) {
	if a.Client == nil {
		return nil, errors.New("bedrock client is nil")
	}
	if a.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.Timeout)
		defer cancel()
	}

	start := time.Now()
	out, err := a.Client.Converse(ctx, ConvertRequest(a.ModelID, a.InferenceConfig, system, user))
	elapsed := time.Since(start)
	monitor.RecordInference(a.ModelID, elapsed, err)
	if err != nil {
		return nil, errors.Wrap(err, "Converse")
	}

	result := ConvertResponse(out)
	monitor.RecordTokens(a.ModelID, result.Usage.InputTokens, result.Usage.OutputTokens)
	logger.Logger.Debug("bedrock converse done",
		zap.String("model", a.ModelID),
		zap.Int64("latency_ms", helper.CalcElapsedTime(start)),
		zap.Int("fragments", len(result.Fragments)),
		zap.Int("input_tokens", result.Usage.InputTokens),
		zap.Int("output_tokens", result.Usage.OutputTokens),
		zap.String("stop_reason", result.StopReason))
	return result, nil
}
