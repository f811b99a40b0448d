package mcpadapter

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/health-agent/internal/guardrails"
)

// ClassifyInput is the MCP tool input schema for classify_query.
type ClassifyInput struct {
	Query string `json:"query" jsonschema:"the user question to classify"`
}

type Classifier interface {
	ValidateInput(input string) guardrails.ValidationResult
}

var errEmptyQuery = errors.New("query is required")

// NewClassifyHandler returns a tool handler that runs only the topic
// classifier. The provider is never called.
// Pass the returned function to mcp.AddTool.
func NewClassifyHandler(classifier Classifier) func(context.Context, *mcp.CallToolRequest, ClassifyInput) (*mcp.CallToolResult, guardrails.ValidationResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ClassifyInput) (*mcp.CallToolResult, guardrails.ValidationResult, error) {
		return ClassifyQuery(ctx, classifier, req, input)
	}
}

// ClassifyQuery reports whether the query would be forwarded to the provider.
func ClassifyQuery(
	ctx context.Context,
	classifier Classifier,
	req *mcp.CallToolRequest,
	input ClassifyInput,
) (*mcp.CallToolResult, guardrails.ValidationResult, error) {
	if input.Query == "" {
		return nil, guardrails.ValidationResult{}, errEmptyQuery
	}
	return nil, classifier.ValidateInput(input.Query), nil
}
