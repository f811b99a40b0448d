package llm

import (
	"context"
	"errors"
)

//go:generate mockgen -destination=mocks/mock_client.go -package=mocks . Client

// Client is a chat-completion provider.
type Client interface {
	Complete(ctx context.Context, request ChatRequest) (*ChatResponse, error)
}

// ErrEmptyCompletion is returned when the provider answered but the response
// carries no usable text.
var ErrEmptyCompletion = errors.New("provider returned no completion text")
