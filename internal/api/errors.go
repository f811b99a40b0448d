package api

import (
	"errors"
	"net/http"

	"github.com/povarna/generative-ai-agents/health-agent/internal/relay"
)

const MsgInvalidBody = "invalid request body."

// StatusFor maps a relay error to the HTTP status and the message shown to
// the caller. Unknown errors are treated as provider failures.
func StatusFor(err error) (int, string) {
	if errors.Is(err, relay.ErrMissingInput) {
		return http.StatusBadRequest, relay.PublicMessage(err)
	}
	return http.StatusInternalServerError, relay.PublicMessage(err)
}
