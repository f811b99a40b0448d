package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/health-agent/internal/setup"
	"github.com/spf13/cobra"
)

func newClassifyCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "classify <query...>",
		Short: "Report whether a query would be forwarded to the model",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger := loadConfig()

			classifier, err := setup.NewClassifier(cfg, &logger)
			if err != nil {
				return err
			}

			result := classifier.ValidateInput(strings.Join(args, " "))

			out := cmd.OutOrStdout()
			if asJSON {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(result)
			}

			label := "off-topic"
			if result.IsValid {
				label = "health-related"
			}
			_, err = fmt.Fprintf(out, "%s: %s\n", label, result.Reason)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full classification as JSON")
	return cmd
}
