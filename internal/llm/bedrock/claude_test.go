package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/povarna/generative-ai-agents/health-agent/internal/llm"
)

type fakeInvoker struct {
	body  []byte
	err   error
	input *bedrockruntime.InvokeModelInput
}

func (f *fakeInvoker) InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &bedrockruntime.InvokeModelOutput{Body: f.body}, nil
}

func newTestClient(invoker *fakeInvoker) *Client {
	return &Client{Client: invoker, ModelID: "anthropic.claude-test", MaxTokens: 2000}
}

func TestClient_Complete_Success(t *testing.T) {
	invoker := &fakeInvoker{
		body: []byte(`{"content":[{"type":"text","text":"Rest and fluids."}],"stop_reason":"end_turn"}`),
	}
	client := newTestClient(invoker)

	resp, err := client.Complete(context.Background(), llm.ChatRequest{
		Messages: []llm.Message{
			llm.SystemMessage("You are a health assistant."),
			llm.UserMessage("How do I treat a cold?"),
		},
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	if resp.Content != "Rest and fluids." {
		t.Errorf("Expected content 'Rest and fluids.', got %q", resp.Content)
	}
	if resp.StopReason != "end_turn" {
		t.Errorf("Expected stop reason 'end_turn', got %q", resp.StopReason)
	}

	var sent claudeMessageRequest
	if err := json.Unmarshal(invoker.input.Body, &sent); err != nil {
		t.Fatalf("Failed to decode sent body: %v", err)
	}
	if sent.System != "You are a health assistant." {
		t.Errorf("Expected system prompt to be sent separately, got %q", sent.System)
	}
	if len(sent.Messages) != 1 || sent.Messages[0].Role != "user" {
		t.Errorf("Expected a single user message, got %+v", sent.Messages)
	}
	if sent.MaxTokens != 2000 {
		t.Errorf("Expected default max tokens 2000, got %d", sent.MaxTokens)
	}
	if *invoker.input.ModelId != "anthropic.claude-test" {
		t.Errorf("Expected default model id, got %s", *invoker.input.ModelId)
	}
}

func TestClient_Complete_EmptyContent(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no content blocks", `{"content":[],"stop_reason":"end_turn"}`},
		{"not json", `<html>bad gateway</html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(&fakeInvoker{body: []byte(tt.body)})

			resp, err := client.Complete(context.Background(), llm.ChatRequest{
				Messages: []llm.Message{llm.UserMessage("hi")},
			})
			if !errors.Is(err, llm.ErrEmptyCompletion) {
				t.Fatalf("Expected ErrEmptyCompletion, got %v", err)
			}
			if resp.Raw != tt.body {
				t.Errorf("Expected raw body to be kept, got %q", resp.Raw)
			}
		})
	}
}

func TestClient_Complete_InvokeError(t *testing.T) {
	client := newTestClient(&fakeInvoker{err: errors.New("ThrottlingException")})

	_, err := client.Complete(context.Background(), llm.ChatRequest{
		Messages: []llm.Message{llm.UserMessage("hi")},
	})
	if err == nil {
		t.Fatal("Expected error")
	}
	if errors.Is(err, llm.ErrEmptyCompletion) {
		t.Error("Invoke failure must not be reported as an empty completion")
	}
}
