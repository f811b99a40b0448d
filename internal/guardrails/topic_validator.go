package guardrails

import (
	"fmt"
	"strings"
)

const methodStatic = "static"

type TopicValidator struct {
	nonHealth     []string
	health        []string
	questionWords []string
}

func NewTopicValidator(cfg TopicConfig) *TopicValidator {
	return &TopicValidator{
		nonHealth:     normalize(cfg.NonHealth),
		health:        normalize(cfg.Health),
		questionWords: normalize(cfg.QuestionWords),
	}
}

// Validate decides whether a query is about health or wellness. Exclusion
// markers win over health markers, and anything without a health marker is
// rejected.
func (v *TopicValidator) Validate(query string) ValidationResult {
	queryLower := strings.ToLower(query)

	if kw, ok := firstMatch(queryLower, v.nonHealth); ok {
		return ValidationResult{
			IsValid:  false,
			Reason:   fmt.Sprintf("query mentions non-health topic %q", kw),
			Category: CategoryOffTopic,
			Matched:  kw,
			Method:   methodStatic,
		}
	}

	if kw, ok := firstMatch(queryLower, v.health); ok {
		return ValidationResult{
			IsValid:  true,
			Reason:   fmt.Sprintf("query mentions health topic %q", kw),
			Category: CategoryHealth,
			Matched:  kw,
			Method:   methodStatic,
		}
	}

	_, hasQuestionWord := firstMatch(queryLower, v.questionWords)
	if len(strings.Fields(query)) < 3 && !hasQuestionWord {
		return ValidationResult{
			IsValid:  false,
			Reason:   "query too short and no health keywords",
			Category: CategoryOffTopic,
			Method:   methodStatic,
		}
	}

	// Ambiguous queries are never accepted.
	return ValidationResult{
		IsValid:  false,
		Reason:   "no health keywords found",
		Category: CategoryUnknown,
		Method:   methodStatic,
	}
}

func (v *TopicValidator) IsHealthRelated(query string) bool {
	return v.Validate(query).IsValid
}

func firstMatch(text string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return kw, true
		}
	}
	return "", false
}
