package gpt

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/povarna/generative-ai-agents/health-agent/internal/llm"
)

func (c *Client) Complete(ctx context.Context, request llm.ChatRequest) (*llm.ChatResponse, error) {
	model := request.Model
	if model == "" {
		model = c.ModelID
	}

	params := openai.ChatCompletionNewParams{
		Messages: toMessageParams(request.Messages),
		Model:    openai.ChatModel(model),
	}
	if request.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(request.MaxTokens))
	}
	if request.Temperature > 0 {
		params.Temperature = openai.Float(request.Temperature)
	}

	output, err := c.Client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("unable to invoke chat completion model. Error: %w", err)
	}

	if len(output.Choices) == 0 || output.Choices[0].Message.Content == "" {
		return &llm.ChatResponse{Model: output.Model, Raw: output.RawJSON()}, llm.ErrEmptyCompletion
	}

	choice := output.Choices[0]
	return &llm.ChatResponse{
		Content:    choice.Message.Content,
		StopReason: fmt.Sprint(choice.FinishReason),
		Model:      output.Model,
		Raw:        output.RawJSON(),
	}, nil
}

func toMessageParams(messages []llm.Message) []openai.ChatCompletionMessageParamUnion {
	params := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case llm.RoleSystem:
			params = append(params, openai.SystemMessage(m.Content))
		case llm.RoleAssistant:
			params = append(params, openai.AssistantMessage(m.Content))
		default:
			params = append(params, openai.UserMessage(m.Content))
		}
	}
	return params
}
