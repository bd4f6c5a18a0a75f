package utils

import "strings"

// RegionMapping maps a Bedrock source region to the geography prefixes of
// the inference profiles it may call, in preference order.
var RegionMapping = map[string][]string{
	"us-east-1":      {"us"},
	"us-east-2":      {"us"},
	"us-west-1":      {"us"},
	"us-west-2":      {"us"},
	"ca-central-1":   {"us"},
	"sa-east-1":      {"us"},
	"us-gov-east-1":  {"us-gov"},
	"us-gov-west-1":  {"us-gov"},
	"eu-central-1":   {"eu"},
	"eu-west-1":      {"eu"},
	"eu-west-2":      {"eu"},
	"eu-west-3":      {"eu"},
	"eu-north-1":     {"eu"},
	"ap-south-1":     {"apac"},
	"ap-southeast-1": {"apac"},
	"ap-southeast-2": {"apac"},
	"ap-northeast-1": {"apac"},
	"ap-northeast-2": {"apac"},
}

// CrossRegionInferences lists the inference profiles known to exist.
var CrossRegionInferences = []string{
	"us.anthropic.claude-3-haiku-20240307-v1:0",
	"us.anthropic.claude-3-5-haiku-20241022-v1:0",
	"us.anthropic.claude-3-sonnet-20240229-v1:0",
	"us.anthropic.claude-3-5-sonnet-20240620-v1:0",
	"us.anthropic.claude-3-5-sonnet-20241022-v2:0",
	"us.anthropic.claude-3-7-sonnet-20250219-v1:0",
	"us.anthropic.claude-sonnet-4-20250514-v1:0",
	"us.amazon.nova-micro-v1:0",
	"us.amazon.nova-lite-v1:0",
	"us.amazon.nova-pro-v1:0",
	"us.meta.llama3-1-8b-instruct-v1:0",
	"us.meta.llama3-1-70b-instruct-v1:0",
	"us-gov.anthropic.claude-3-haiku-20240307-v1:0",
	"us-gov.anthropic.claude-3-5-sonnet-20240620-v1:0",
	"eu.anthropic.claude-3-haiku-20240307-v1:0",
	"eu.anthropic.claude-3-sonnet-20240229-v1:0",
	"eu.anthropic.claude-3-5-sonnet-20240620-v1:0",
	"eu.anthropic.claude-3-7-sonnet-20250219-v1:0",
	"eu.anthropic.claude-sonnet-4-20250514-v1:0",
	"eu.amazon.nova-micro-v1:0",
	"eu.amazon.nova-lite-v1:0",
	"eu.amazon.nova-pro-v1:0",
	"apac.anthropic.claude-3-haiku-20240307-v1:0",
	"apac.anthropic.claude-3-sonnet-20240229-v1:0",
	"apac.anthropic.claude-3-5-sonnet-20240620-v1:0",
	"apac.anthropic.claude-3-5-sonnet-20241022-v2:0",
	"apac.anthropic.claude-sonnet-4-20250514-v1:0",
	"apac.amazon.nova-micro-v1:0",
	"apac.amazon.nova-lite-v1:0",
	"apac.amazon.nova-pro-v1:0",
}

var crossRegionSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(CrossRegionInferences))
	for _, id := range CrossRegionInferences {
		set[id] = struct{}{}
	}
	return set
}()

func getRegionPrefix(region string) string {
	if prefixes, ok := RegionMapping[region]; ok && len(prefixes) > 0 {
		return prefixes[0]
	}
	return ""
}

// ConvertModelID2CrossRegionProfile returns the inference profile id for
// model in region, or model unchanged when no profile applies. Ids that
// already carry a geography prefix are returned as-is.
func ConvertModelID2CrossRegionProfile(model, region string) string {
	if HasRegionPrefix(model) {
		return model
	}

	for _, prefix := range RegionMapping[region] {
		candidate := prefix + "." + model
		if _, ok := crossRegionSet[candidate]; ok {
			return candidate
		}
	}
	return model
}

// HasRegionPrefix reports whether model already names an inference profile.
func HasRegionPrefix(model string) bool {
	prefix, _, ok := strings.Cut(model, ".")
	if !ok {
		return false
	}
	for _, prefixes := range RegionMapping {
		for _, p := range prefixes {
			if p == prefix {
				return true
			}
		}
	}
	return false
}
