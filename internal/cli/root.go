package cli

import (
	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/health-agent/internal/setup"
	applogger "github.com/povarna/generative-ai-agents/health-agent/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the health-agent command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "health-agent",
		Short: "Classify and answer health questions from the terminal",
		Long: `Classify and answer health questions from the terminal.

Configuration is read from the environment and an optional .env file,
the same way the HTTP server reads it.

Examples:
  health-agent classify "I have a headache"
  health-agent ask --lang hi "What helps with a fever?"
  echo "How much sleep do I need?" | health-agent ask --stdin`,
		SilenceUsage: true,
	}

	root.AddCommand(newClassifyCmd())
	root.AddCommand(newAskCmd())
	return root
}

func Execute() error {
	_ = godotenv.Load()
	return NewRootCmd().Execute()
}

func loadConfig() (*setup.Config, zerolog.Logger) {
	cfg := setup.LoadConfig()
	return cfg, applogger.New(cfg.LogLevel, cfg.LogFormat)
}
