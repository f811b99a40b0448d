package relay

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/health-agent/internal/guardrails"
	"github.com/povarna/generative-ai-agents/health-agent/internal/llm"
	"github.com/povarna/generative-ai-agents/health-agent/internal/metrics"
	"github.com/rs/zerolog"
)

const DefaultModelID = "llama-3.3-70b-versatile"

// TopicClassifier decides whether a query may be forwarded to the provider.
type TopicClassifier interface {
	ValidateInput(input string) guardrails.ValidationResult
}

type Answer struct {
	Text     string
	OffTopic bool
	Model    string
}

type Service struct {
	client     llm.Client
	classifier TopicClassifier
	modelID    string
	logger     *zerolog.Logger
}

func NewService(client llm.Client, classifier TopicClassifier, modelID string, logger *zerolog.Logger) *Service {
	if modelID == "" {
		modelID = DefaultModelID
	}
	return &Service{
		client:     client,
		classifier: classifier,
		modelID:    modelID,
		logger:     logger,
	}
}

// Respond classifies the query and, when it is health related, forwards it
// to the provider. Off-topic queries get RefusalMessage with a nil error.
func (s *Service) Respond(ctx context.Context, query string, lang string) (Answer, error) {
	if strings.TrimSpace(query) == "" {
		metrics.ObserveOutcome(metrics.OutcomeMissingInput)
		return Answer{}, ErrMissingInput
	}

	validation := s.classifier.ValidateInput(query)
	metrics.ObserveClassification(validation.IsValid)
	if !validation.IsValid {
		metrics.ObserveOutcome(metrics.OutcomeOffTopic)
		return Answer{Text: RefusalMessage, OffTopic: true}, nil
	}

	start := time.Now()
	response, err := s.client.Complete(ctx, llm.ChatRequest{
		Model: s.modelID,
		Messages: []llm.Message{
			llm.SystemMessage(BuildSystemPrompt(lang)),
			llm.UserMessage(query),
		},
	})
	metrics.ObserveProviderLatency(time.Since(start))

	if err != nil {
		if errors.Is(err, llm.ErrEmptyCompletion) {
			raw := ""
			if response != nil {
				raw = response.Raw
			}
			s.logger.Error().Str("raw_response", raw).Msg("Unexpected provider response structure")
			metrics.ObserveOutcome(metrics.OutcomeMalformedResponse)
			return Answer{}, ErrMalformedProviderResponse
		}

		s.logger.Error().Err(err).Str("model", s.modelID).Msg("Error calling completion provider")
		metrics.ObserveOutcome(metrics.OutcomeProviderError)
		return Answer{}, fmt.Errorf("%w: %w", ErrProviderCallFailed, err)
	}

	if response == nil || strings.TrimSpace(response.Content) == "" {
		s.logger.Error().Interface("response", response).Msg("Unexpected provider response structure")
		metrics.ObserveOutcome(metrics.OutcomeMalformedResponse)
		return Answer{}, ErrMalformedProviderResponse
	}

	s.logger.Info().
		Str("model", response.Model).
		Str("stop_reason", response.StopReason).
		Int("length", len(response.Content)).
		Msg("Completion received")
	metrics.ObserveOutcome(metrics.OutcomeAnswered)

	model := response.Model
	if model == "" {
		model = s.modelID
	}
	return Answer{Text: response.Content, Model: model}, nil
}
