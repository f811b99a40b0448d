package mcpadapter

import "github.com/modelcontextprotocol/go-sdk/mcp"

const (
	ToolAskHealthQuestion = "ask_health_question"
	ToolClassifyQuery     = "classify_query"
)

// NewServer registers both health tools on a fresh MCP server.
func NewServer(responder Responder, classifier Classifier, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "health-agent", Version: version}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolAskHealthQuestion,
		Description: "Answer a health or wellness question in the requested language. Off-topic questions get a fixed refusal.",
	}, NewAskHandler(responder))

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolClassifyQuery,
		Description: "Check whether a question is health related without calling the language model",
	}, NewClassifyHandler(classifier))

	return server
}
