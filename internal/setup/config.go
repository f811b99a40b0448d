package setup

import (
	"errors"
	"fmt"
	"os"

	"github.com/povarna/generative-ai-agents/health-agent/internal/llm/gpt"
	"github.com/povarna/generative-ai-agents/health-agent/internal/relay"
)

const (
	ProviderOpenAI  = "openai"
	ProviderBedrock = "bedrock"
)

var ErrMissingCredential = errors.New("GROQ_API_KEY is not set")

type Config struct {
	Port            string
	Provider        string
	APIKey          string
	BaseURL         string
	ModelID         string
	AWSRegion       string
	ClaudeModelID   string
	LogLevel        string
	LogFormat       string
	TopicConfigPath string
}

func LoadConfig() *Config {
	return &Config{
		Port:            getEnv("PORT", "3000"),
		Provider:        getEnv("LLM_PROVIDER", ProviderOpenAI),
		APIKey:          getEnv("GROQ_API_KEY", ""),
		BaseURL:         getEnv("LLM_BASE_URL", gpt.DefaultBaseURL),
		ModelID:         getEnv("LLM_MODEL_ID", relay.DefaultModelID),
		AWSRegion:       getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID:   getEnv("CLAUDE_MODEL_ID", ""),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "console"),
		TopicConfigPath: getEnv("TOPIC_CONFIG_PATH", ""),
	}
}

// Validate reports configuration the process cannot serve without.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI:
		if c.APIKey == "" {
			return ErrMissingCredential
		}
	case ProviderBedrock:
		if c.ClaudeModelID == "" {
			return fmt.Errorf("CLAUDE_MODEL_ID is required for the %s provider", ProviderBedrock)
		}
	default:
		return fmt.Errorf("unknown LLM provider %q (expected %q or %q)", c.Provider, ProviderOpenAI, ProviderBedrock)
	}
	return nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}
