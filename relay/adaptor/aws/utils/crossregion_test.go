package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetRegionPrefix(t *testing.T) {
	tests := []struct {
		name     string
		region   string
		expected string
	}{
		{"US East 1", "us-east-1", "us"},
		{"US West 2", "us-west-2", "us"},
		{"Canada Central", "ca-central-1", "us"},
		{"EU West 1", "eu-west-1", "eu"},
		{"EU Central", "eu-central-1", "eu"},
		{"Asia Pacific Southeast", "ap-southeast-1", "apac"},
		{"US Government East", "us-gov-east-1", "us-gov"},
		{"South America", "sa-east-1", "us"},
		{"Unknown region", "unknown-region-1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equalf(t, tt.expected, getRegionPrefix(tt.region), "getRegionPrefix(%s)", tt.region)
		})
	}
}

func TestConvertModelID2CrossRegionProfile(t *testing.T) {
	tests := []struct {
		name     string
		model    string
		region   string
		expected string
	}{
		{
			name:     "US region with supported model",
			model:    "anthropic.claude-3-haiku-20240307-v1:0",
			region:   "us-east-1",
			expected: "us.anthropic.claude-3-haiku-20240307-v1:0",
		},
		{
			name:     "EU region with supported model",
			model:    "anthropic.claude-3-sonnet-20240229-v1:0",
			region:   "eu-west-1",
			expected: "eu.anthropic.claude-3-sonnet-20240229-v1:0",
		},
		{
			name:     "APAC region with supported model",
			model:    "anthropic.claude-3-5-sonnet-20240620-v1:0",
			region:   "ap-southeast-1",
			expected: "apac.anthropic.claude-3-5-sonnet-20240620-v1:0",
		},
		{
			name:     "already a profile",
			model:    "eu.anthropic.claude-3-haiku-20240307-v1:0",
			region:   "us-east-1",
			expected: "eu.anthropic.claude-3-haiku-20240307-v1:0",
		},
		{
			name:     "Unsupported model returns original",
			model:    "unsupported.model-v1:0",
			region:   "us-east-1",
			expected: "unsupported.model-v1:0",
		},
		{
			name:     "Unsupported region returns original",
			model:    "anthropic.claude-3-haiku-20240307-v1:0",
			region:   "unknown-region-1",
			expected: "anthropic.claude-3-haiku-20240307-v1:0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ConvertModelID2CrossRegionProfile(tt.model, tt.region)
			require.Equalf(t, tt.expected, result, "ConvertModelID2CrossRegionProfile(%s, %s)", tt.model, tt.region)
		})
	}
}

func TestHasRegionPrefix(t *testing.T) {
	require.True(t, HasRegionPrefix("us.anthropic.claude-3-haiku-20240307-v1:0"))
	require.True(t, HasRegionPrefix("us-gov.anthropic.claude-3-haiku-20240307-v1:0"))
	require.False(t, HasRegionPrefix("anthropic.claude-3-haiku-20240307-v1:0"))
	require.False(t, HasRegionPrefix("plain"))
}

func TestCrossRegionInferencesValidation(t *testing.T) {
	for _, modelID := range CrossRegionInferences {
		parts := strings.SplitN(modelID, ".", 2)
		require.Lenf(t, parts, 2, "invalid cross-region model ID format: %s", modelID)
		require.Truef(t, HasRegionPrefix(modelID), "invalid prefix %s in model ID: %s", parts[0], modelID)
	}
}

func BenchmarkConvertModelID2CrossRegionProfile(b *testing.B) {
	for b.Loop() {
		ConvertModelID2CrossRegionProfile("anthropic.claude-3-haiku-20240307-v1:0", "us-east-1")
	}
}
