package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/povarna/generative-ai-agents/health-agent/internal/relay"
	"github.com/povarna/generative-ai-agents/health-agent/internal/setup"
	"github.com/spf13/cobra"
)

func newAskCmd() *cobra.Command {
	var (
		lang      string
		fromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "ask <query...>",
		Short: "Ask the health assistant a question",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			if fromStdin {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("failed to read from stdin: %w", err)
				}
				query = string(data)
			}

			cfg, logger := loadConfig()

			deps, err := setup.Wire(cmd.Context(), cfg, &logger)
			if err != nil {
				return err
			}

			answer, err := deps.Relay.Respond(cmd.Context(), query, lang)
			if err != nil {
				logger.Debug().Err(err).Msg("Relay failed")
				return errors.New(relay.PublicMessage(err))
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), answer.Text)
			return err
		},
	}

	cmd.Flags().StringVar(&lang, "lang", relay.DefaultLanguage, "Language code for the answer")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "Read the question from stdin")
	return cmd
}
