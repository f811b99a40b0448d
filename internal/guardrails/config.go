package guardrails

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// TopicConfig holds the ordered marker phrase lists used by TopicValidator.
// NonHealth is always evaluated before Health.
type TopicConfig struct {
	NonHealth     []string `yaml:"non_health"`
	Health        []string `yaml:"health"`
	QuestionWords []string `yaml:"question_words"`
}

func DefaultTopicConfig() TopicConfig {
	return TopicConfig{
		NonHealth:     append([]string(nil), DefaultNonHealthKeywords...),
		Health:        append([]string(nil), DefaultHealthKeywords...),
		QuestionWords: append([]string(nil), DefaultQuestionWords...),
	}
}

// LoadTopicConfig reads keyword lists from a YAML file. An empty path returns
// the built-in lists; lists missing from the file keep their defaults.
func LoadTopicConfig(path string) (TopicConfig, error) {
	if path == "" {
		return DefaultTopicConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return TopicConfig{}, fmt.Errorf("failed to read topic config %s: %w", path, err)
	}

	var cfg TopicConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TopicConfig{}, fmt.Errorf("failed to parse topic config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return TopicConfig{}, err
	}

	return cfg, nil
}

func applyDefaults(cfg *TopicConfig) {
	defaults := DefaultTopicConfig()
	if len(cfg.NonHealth) == 0 {
		cfg.NonHealth = defaults.NonHealth
	}
	if len(cfg.Health) == 0 {
		cfg.Health = defaults.Health
	}
	if len(cfg.QuestionWords) == 0 {
		cfg.QuestionWords = defaults.QuestionWords
	}
}

func (c TopicConfig) Validate() error {
	lists := []struct {
		name     string
		keywords []string
	}{
		{"non_health", c.NonHealth},
		{"health", c.Health},
		{"question_words", c.QuestionWords},
	}
	for _, list := range lists {
		for i, kw := range list.keywords {
			if strings.TrimSpace(kw) == "" {
				return fmt.Errorf("topic config: %s[%d] is blank", list.name, i)
			}
		}
	}
	return nil
}

func normalize(list []string) []string {
	out := make([]string, 0, len(list))
	for _, kw := range list {
		out = append(out, strings.ToLower(strings.TrimSpace(kw)))
	}
	return out
}
