package guardrails

import (
	"github.com/rs/zerolog"
)

type Guardrails struct {
	topicValidator *TopicValidator
	logger         *zerolog.Logger
}

func NewGuardrails(topicValidator *TopicValidator, logger *zerolog.Logger) *Guardrails {
	return &Guardrails{
		topicValidator: topicValidator,
		logger:         logger,
	}
}

func (g *Guardrails) ValidateInput(input string) ValidationResult {
	result := g.topicValidator.Validate(input)
	if !result.IsValid {
		g.logger.Info().
			Str("method", result.Method).
			Str("category", result.Category).
			Str("reason", result.Reason).
			Msg("Input blocked by topic rules")
	}
	return result
}
