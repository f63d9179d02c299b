package describe

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"git.home.luguber.info/inful/toolindex/internal/config"
	"git.home.luguber.info/inful/toolindex/internal/logfields"
)

// Environment contract for the generated tier. The credential is only ever
// read from the environment, and LLM_DRY_RUN suppresses all outbound calls.
const (
	EnvAPIKey     = "AZURE_OPENAI_API_KEY"
	EnvEndpoint   = "AZURE_OPENAI_ENDPOINT"
	EnvDeployment = "AZURE_OPENAI_DEPLOYMENT"
	EnvDryRun     = "LLM_DRY_RUN"
)

// Generator is the text-generation capability behind the generated tier.
// It is resolved once at startup; the chain never inspects environment
// state itself.
type Generator interface {
	// Enabled reports whether Describe may be called at all. A disabled
	// generator causes the tier to be skipped without any outbound call.
	Enabled() bool
	// Describe asks for exactly one concise sentence describing a tool.
	Describe(ctx context.Context, title, excerpt string) (string, error)
}

type disabledGenerator struct {
	reason string
}

// Disabled returns an inert generator that always reports absence.
func Disabled(reason string) Generator {
	return disabledGenerator{reason: reason}
}

func (disabledGenerator) Enabled() bool { return false }

func (g disabledGenerator) Describe(context.Context, string, string) (string, error) {
	panic("Describe called on disabled generator: " + g.reason)
}

// ResolveGenerator inspects configuration and environment once and returns
// either a live network-backed generator or an inert disabled one. It never
// fails; an unusable setup degrades to the disabled generator.
func ResolveGenerator(cfg config.DescribeConfig) Generator {
	if dryRun() {
		slog.Info("Description generation disabled: dry run active")
		return Disabled("dry run")
	}

	apiKey := os.Getenv(EnvAPIKey)
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = os.Getenv(EnvEndpoint)
	}
	if apiKey == "" || endpoint == "" {
		slog.Debug("Description generation disabled: credential not configured")
		return Disabled("credential not configured")
	}

	deployment := cfg.Deployment
	if deployment == "" {
		deployment = os.Getenv(EnvDeployment)
	}
	if deployment == "" {
		slog.Debug("Description generation disabled: no deployment configured")
		return Disabled("no deployment configured")
	}

	gen, err := NewAzureGenerator(endpoint, apiKey, deployment, cfg.TimeoutDuration())
	if err != nil {
		slog.Warn("Description generation disabled: client setup failed", logfields.Error(err))
		return Disabled("client setup failed")
	}
	return gen
}

func dryRun() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(EnvDryRun)))
	return v == "true" || v == "1"
}
