package mcpadapter

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/health-agent/internal/relay"
)

// AskInput mirrors the HTTP body of POST /api/chat.
type AskInput struct {
	UserQuery string `json:"user_query" jsonschema:"the health question to answer"`
	Lang      string `json:"lang,omitempty" jsonschema:"language code for the answer, defaults to en"`
}

type AskOutput struct {
	Text string `json:"text" jsonschema:"the assistant answer or the off-topic refusal"`
}

type Responder interface {
	Respond(ctx context.Context, query string, lang string) (relay.Answer, error)
}

// NewAskHandler returns a tool handler backed by the completion relay.
// Pass the returned function to mcp.AddTool.
func NewAskHandler(responder Responder) func(context.Context, *mcp.CallToolRequest, AskInput) (*mcp.CallToolResult, AskOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AskInput) (*mcp.CallToolResult, AskOutput, error) {
		return AskQuestion(ctx, responder, req, input)
	}
}

// AskQuestion relays the question and hides provider details behind the
// same messages the HTTP API returns.
func AskQuestion(
	ctx context.Context,
	responder Responder,
	req *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	answer, err := responder.Respond(ctx, input.UserQuery, input.Lang)
	if err != nil {
		return nil, AskOutput{}, errors.New(relay.PublicMessage(err))
	}
	return nil, AskOutput{Text: answer.Text}, nil
}
