package bedrock

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/povarna/generative-ai-agents/health-agent/internal/llm"
	"github.com/tidwall/gjson"
)

// Claude API request format (what Bedrock expects)
type claudeMessageRequest struct {
	AnthropicVersion string          `json:"anthropic_version"`
	MaxTokens        int             `json:"max_tokens"`
	Temperature      float64         `json:"temperature,omitempty"`
	System           string          `json:"system,omitempty"`
	Messages         []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

var anthropicVersion = "bedrock-2023-05-31"

func (c *Client) Complete(ctx context.Context, request llm.ChatRequest) (*llm.ChatResponse, error) {
	modelID := request.Model
	if modelID == "" {
		modelID = c.ModelID
	}
	maxTokens := request.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.MaxTokens
	}

	payload := claudeMessageRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        maxTokens,
		Temperature:      request.Temperature,
	}

	// Claude takes the system prompt outside of the message list
	var system []string
	for _, m := range request.Messages {
		if m.Role == llm.RoleSystem {
			system = append(system, m.Content)
			continue
		}
		payload.Messages = append(payload.Messages, claudeMessage{Role: m.Role, Content: m.Content})
	}
	payload.System = strings.Join(system, "\n\n")

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("Unable to serialize claude request. Error: %w", err)
	}

	output, err := c.Client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(modelID),
		Body:        body,
		Accept:      aws.String("application/json"),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, fmt.Errorf("Unable to invoke claude model. Error: %w", err)
	}

	raw := string(output.Body)
	if !gjson.Valid(raw) {
		return &llm.ChatResponse{Model: modelID, Raw: raw}, llm.ErrEmptyCompletion
	}

	text := gjson.Get(raw, "content.0.text").String()
	if text == "" {
		return &llm.ChatResponse{Model: modelID, Raw: raw}, llm.ErrEmptyCompletion
	}

	return &llm.ChatResponse{
		Content:    text,
		StopReason: gjson.Get(raw, "stop_reason").String(),
		Model:      modelID,
		Raw:        raw,
	}, nil
}
