package main

import (
	"strings"
	"time"

	"github.com/Laisky/errors/v2"

	appcfg "github.com/promptkit/prompt-api/common/config"
	"github.com/promptkit/prompt-api/common/env"
	"github.com/promptkit/prompt-api/relay/variant"
)

// config captures the sweep settings read from the environment.
type config struct {
	APIBase      string
	Variant      variant.Name
	Origin       string
	Canonical    string
	SkipGenerate bool
	Timeout      time.Duration
}

// loadConfig reads SMOKE_* variables, falling back to the service settings
// so a shared .env drives both.
func loadConfig() (config, error) {
	base := strings.TrimSuffix(strings.TrimSpace(env.String("SMOKE_API_BASE", "")), "/")
	if base == "" {
		return config{}, errors.Errorf("SMOKE_API_BASE must be set")
	}

	profile, err := variant.Get(env.String("SMOKE_VARIANT", appcfg.PromptVariant))
	if err != nil {
		return config{}, errors.Wrap(err, "parse SMOKE_VARIANT")
	}

	timeout := defaultTimeout
	if secs := env.Int("SMOKE_TIMEOUT", 0); secs > 0 {
		timeout = time.Duration(secs) * time.Second
	}

	return config{
		APIBase:      base,
		Variant:      profile.Name,
		Origin:       strings.TrimSpace(env.String("SMOKE_ORIGIN", appcfg.CanonicalOrigin)),
		Canonical:    appcfg.CanonicalOrigin,
		SkipGenerate: env.Bool("SMOKE_SKIP_GENERATE", false),
		Timeout:      timeout,
	}, nil
}
