package aws

import (
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
)

// InferenceConfig mirrors the Converse inferenceConfig block.
type InferenceConfig struct {
	MaxTokens   int
	Temperature float64
	TopP        float64
}

// Usage holds the token counts reported by Converse.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Result is the post-call view of a Converse answer.
type Result struct {
	Fragments  []string
	StopReason string
	Usage      Usage
}

// Text concatenates the fragments in order.
func (r *Result) Text() string {
	return strings.Join(r.Fragments, "")
}

// ConvertRequest builds the Converse input: one system block and a single
// user message carrying the assembled instruction.
func ConvertRequest(modelID string, cfg InferenceConfig, system, user string) *bedrockruntime.ConverseInput {
	inferenceConfig := &types.InferenceConfiguration{
		MaxTokens:   aws.Int32(int32(cfg.MaxTokens)),
		Temperature: aws.Float32(float32(cfg.Temperature)),
		TopP:        aws.Float32(float32(cfg.TopP)),
	}

	converseReq := &bedrockruntime.ConverseInput{
		ModelId:         aws.String(modelID),
		InferenceConfig: inferenceConfig,
		Messages: []types.Message{
			{
				Role: types.ConversationRoleUser,
				Content: []types.ContentBlock{
					&types.ContentBlockMemberText{Value: user},
				},
			},
		},
	}
	if system != "" {
		converseReq.System = []types.SystemContentBlock{
			&types.SystemContentBlockMemberText{Value: system},
		}
	}
	return converseReq
}

// ConvertResponse collects text blocks from the output message. Non-text
// blocks are skipped; a missing message yields no fragments.
func ConvertResponse(converseResp *bedrockruntime.ConverseOutput) *Result {
	result := &Result{}
	if converseResp == nil {
		return result
	}

	if msg, ok := converseResp.Output.(*types.ConverseOutputMemberMessage); ok {
		for _, contentBlock := range msg.Value.Content {
			if text, ok := contentBlock.(*types.ContentBlockMemberText); ok {
				result.Fragments = append(result.Fragments, text.Value)
			}
		}
	}
	result.StopReason = string(converseResp.StopReason)

	if converseResp.Usage != nil {
		if converseResp.Usage.InputTokens != nil {
			result.Usage.InputTokens = int(*converseResp.Usage.InputTokens)
		}
		if converseResp.Usage.OutputTokens != nil {
			result.Usage.OutputTokens = int(*converseResp.Usage.OutputTokens)
		}
		if converseResp.Usage.TotalTokens != nil {
			result.Usage.TotalTokens = int(*converseResp.Usage.TotalTokens)
		} else {
			result.Usage.TotalTokens = result.Usage.InputTokens + result.Usage.OutputTokens
		}
	}
	return result
}
