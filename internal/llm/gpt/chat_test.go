package gpt

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/povarna/generative-ai-agents/health-agent/internal/llm"
)

type capturedRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newTestServer(t *testing.T, status int, body string, captured *capturedRequest) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected Authorization header %q", got)
		}
		if captured != nil {
			if err := json.NewDecoder(r.Body).Decode(captured); err != nil {
				t.Errorf("failed to decode request body: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNewClient_Validation(t *testing.T) {
	if _, err := NewClient("", "", "model"); err == nil {
		t.Error("Expected error for missing API key")
	}
	if _, err := NewClient("key", "", ""); err == nil {
		t.Error("Expected error for missing model")
	}

	client, err := NewClient("key", "", "model")
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if client.ModelID != "model" {
		t.Errorf("Expected ModelID 'model', got %q", client.ModelID)
	}
}

func TestClient_Complete_Success(t *testing.T) {
	var captured capturedRequest
	server := newTestServer(t, http.StatusOK, `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"created": 1700000000,
		"model": "llama-3.3-70b-versatile",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": "Drink water."}, "finish_reason": "stop"}]
	}`, &captured)

	client, err := NewClient("test-key", server.URL+"/", "llama-3.3-70b-versatile")
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	resp, err := client.Complete(context.Background(), llm.ChatRequest{
		Messages: []llm.Message{
			llm.SystemMessage("be helpful"),
			llm.UserMessage("I feel dehydrated"),
		},
	})
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	if resp.Content != "Drink water." {
		t.Errorf("Expected content 'Drink water.', got %q", resp.Content)
	}
	if resp.StopReason != "stop" {
		t.Errorf("Expected stop reason 'stop', got %q", resp.StopReason)
	}
	if captured.Model != "llama-3.3-70b-versatile" {
		t.Errorf("Expected default model to be sent, got %q", captured.Model)
	}
	if len(captured.Messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(captured.Messages))
	}
	if captured.Messages[0].Role != "system" || captured.Messages[1].Role != "user" {
		t.Errorf("Expected system then user roles, got %s, %s", captured.Messages[0].Role, captured.Messages[1].Role)
	}
	if captured.Messages[1].Content != "I feel dehydrated" {
		t.Errorf("Expected user content to be forwarded, got %q", captured.Messages[1].Content)
	}
}

func TestClient_Complete_NoChoices(t *testing.T) {
	server := newTestServer(t, http.StatusOK, `{
		"id": "chatcmpl-2",
		"object": "chat.completion",
		"created": 1700000000,
		"model": "llama-3.3-70b-versatile",
		"choices": []
	}`, nil)

	client, _ := NewClient("test-key", server.URL+"/", "llama-3.3-70b-versatile")

	resp, err := client.Complete(context.Background(), llm.ChatRequest{
		Messages: []llm.Message{llm.UserMessage("hello")},
	})
	if !errors.Is(err, llm.ErrEmptyCompletion) {
		t.Fatalf("Expected ErrEmptyCompletion, got %v", err)
	}
	if resp == nil || !strings.Contains(resp.Raw, "chatcmpl-2") {
		t.Errorf("Expected raw response to be kept for diagnostics, got %+v", resp)
	}
}

func TestClient_Complete_ProviderError(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"message": "upstream exploded", "type": "server_error"}}`))
	}))
	defer server.Close()

	client, _ := NewClient("test-key", server.URL+"/", "llama-3.3-70b-versatile")

	_, err := client.Complete(context.Background(), llm.ChatRequest{
		Messages: []llm.Message{llm.UserMessage("hello")},
	})
	if err == nil {
		t.Fatal("Expected error from provider")
	}
	if errors.Is(err, llm.ErrEmptyCompletion) {
		t.Error("Provider failure must not be reported as an empty completion")
	}
	if calls != 1 {
		t.Errorf("Expected exactly one call without retries, got %d", calls)
	}
}
