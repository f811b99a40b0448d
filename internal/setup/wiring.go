package setup

import (
	"context"
	"fmt"

	"github.com/povarna/generative-ai-agents/health-agent/internal/guardrails"
	"github.com/povarna/generative-ai-agents/health-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/health-agent/internal/llm/bedrock"
	"github.com/povarna/generative-ai-agents/health-agent/internal/llm/gpt"
	"github.com/povarna/generative-ai-agents/health-agent/internal/relay"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Relay      *relay.Service
	Guardrails *guardrails.Guardrails
	Logger     *zerolog.Logger
}

// Wire builds the provider client once and injects it into the relay.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g, err := NewClassifier(cfg, logger)
	if err != nil {
		return nil, err
	}

	llmClient, modelID, err := createLLMClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.Provider, err)
	}

	logger.Info().
		Str("provider", cfg.Provider).
		Str("model", modelID).
		Msg("LLM client initialized")

	return &Dependencies{
		Relay:      relay.NewService(llmClient, g, modelID, logger),
		Guardrails: g,
		Logger:     logger,
	}, nil
}

func createLLMClient(ctx context.Context, cfg *Config) (llm.Client, string, error) {
	switch cfg.Provider {
	case ProviderBedrock:
		client, err := bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
		return client, cfg.ClaudeModelID, err
	default:
		client, err := gpt.NewClient(cfg.APIKey, cfg.BaseURL, cfg.ModelID)
		return client, cfg.ModelID, err
	}
}

// NewClassifier builds only the topic guardrails, for callers that never
// reach the provider.
func NewClassifier(cfg *Config, logger *zerolog.Logger) (*guardrails.Guardrails, error) {
	topicConfig, err := guardrails.LoadTopicConfig(cfg.TopicConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load topic config: %w", err)
	}
	return guardrails.NewGuardrails(guardrails.NewTopicValidator(topicConfig), logger), nil
}
