package main

import (
	"os"

	"github.com/povarna/generative-ai-agents/health-agent/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
