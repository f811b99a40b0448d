package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/health-agent/internal/mcpadapter"
	"github.com/povarna/generative-ai-agents/health-agent/internal/setup"
	applogger "github.com/povarna/generative-ai-agents/health-agent/internal/setup/logger"
)

const version = "1.0.0"

func main() {
	_ = godotenv.Load()
	cfg := setup.LoadConfig()

	// stdout belongs to the protocol; force console logs onto stderr
	logger := applogger.New(cfg.LogLevel, "console")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		logger.Error().Err(err).Msg("Unable to load dependencies")
		os.Exit(1)
	}

	server := mcpadapter.NewServer(deps.Relay, deps.Guardrails, version)
	logger.Info().Str("version", version).Msg("Serving health tools over stdio")

	err = server.Run(ctx, &mcp.StdioTransport{})
	switch {
	case err == nil:
	case errors.Is(err, io.EOF), strings.Contains(err.Error(), "server is closing"):
		logger.Debug().Err(err).Msg("MCP client disconnected")
	default:
		logger.Error().Err(err).Msg("MCP server failed")
		os.Exit(1)
	}
}
