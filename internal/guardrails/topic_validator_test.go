package guardrails

import (
	"strings"
	"testing"
)

func TestTopicValidator_Validate(t *testing.T) {
	validator := NewTopicValidator(DefaultTopicConfig())

	tests := []struct {
		name         string
		query        string
		wantValid    bool
		wantCategory string
		wantMatched  string
	}{
		{
			name:         "health question",
			query:        "What should I do about a persistent headache?",
			wantValid:    true,
			wantCategory: CategoryHealth,
			wantMatched:  "ache",
		},
		{
			name:         "uppercase health term",
			query:        "DIABETES DIET PLAN",
			wantValid:    true,
			wantCategory: CategoryHealth,
			wantMatched:  "diet",
		},
		{
			name:         "multi word health phrase",
			query:        "tips for better mental health",
			wantValid:    true,
			wantCategory: CategoryHealth,
			wantMatched:  "health",
		},
		{
			name:         "non health marker wins over health term",
			query:        "Does bitcoin trading cause a headache?",
			wantValid:    false,
			wantCategory: CategoryOffTopic,
			wantMatched:  "bitcoin",
		},
		{
			name:         "weather question",
			query:        "what's the weather today",
			wantValid:    false,
			wantCategory: CategoryOffTopic,
			wantMatched:  "weather",
		},
		{
			name:         "recipe with nutrition term",
			query:        "Give me a healthy recipe for dinner",
			wantValid:    false,
			wantCategory: CategoryOffTopic,
			wantMatched:  "recipe",
		},
		{
			name:         "short query without keywords",
			query:        "blue sky",
			wantValid:    false,
			wantCategory: CategoryOffTopic,
		},
		{
			name:         "three token query without keywords",
			query:        "blue sky today",
			wantValid:    false,
			wantCategory: CategoryUnknown,
		},
		{
			name:         "ambiguous longer query",
			query:        "Tell me something interesting",
			wantValid:    false,
			wantCategory: CategoryUnknown,
		},
		{
			name:         "question shaped query without keywords",
			query:        "Why is the sky blue?",
			wantValid:    false,
			wantCategory: CategoryUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validator.Validate(tt.query)

			if got.IsValid != tt.wantValid {
				t.Errorf("IsValid: %v, want %v (reason: %s)", got.IsValid, tt.wantValid, got.Reason)
			}
			if got.Category != tt.wantCategory {
				t.Errorf("Category: %q, want %q", got.Category, tt.wantCategory)
			}
			if got.Matched != tt.wantMatched {
				t.Errorf("Matched: %q, want %q", got.Matched, tt.wantMatched)
			}
			if got.Method != "static" {
				t.Errorf("Method: %q, want static", got.Method)
			}
		})
	}
}

func TestTopicValidator_NonHealthPrecedence(t *testing.T) {
	validator := NewTopicValidator(DefaultTopicConfig())

	for _, marker := range DefaultNonHealthKeywords {
		query := "I have a fever and chest pain, also " + marker
		if validator.IsHealthRelated(query) {
			t.Errorf("expected %q to be rejected because of %q", query, marker)
		}
	}
}

func TestTopicValidator_EveryHealthKeywordAccepted(t *testing.T) {
	validator := NewTopicValidator(DefaultTopicConfig())

	for _, kw := range DefaultHealthKeywords {
		if !validator.IsHealthRelated(kw) {
			t.Errorf("expected health keyword %q to be accepted", kw)
		}
		if !validator.IsHealthRelated(strings.ToUpper(kw)) {
			t.Errorf("expected uppercase health keyword %q to be accepted", kw)
		}
	}
}

func TestTopicValidator_Deterministic(t *testing.T) {
	validator := NewTopicValidator(DefaultTopicConfig())
	query := "How much protein should I eat after a workout?"

	first := validator.Validate(query)
	for i := 0; i < 10; i++ {
		if got := validator.Validate(query); got != first {
			t.Fatalf("run %d: got %+v, want %+v", i, got, first)
		}
	}
}

func TestTopicValidator_CustomConfig(t *testing.T) {
	validator := NewTopicValidator(TopicConfig{
		NonHealth:     []string{"Lottery"},
		Health:        []string{"Sunscreen"},
		QuestionWords: DefaultQuestionWords,
	})

	if !validator.IsHealthRelated("which sunscreen is best") {
		t.Error("expected custom health keyword to match case-insensitively")
	}
	if validator.IsHealthRelated("sunscreen lottery winners") {
		t.Error("expected custom non-health keyword to take precedence")
	}
	if validator.IsHealthRelated("I have a headache") {
		t.Error("expected default keywords to be replaced by custom lists")
	}
}
