package middleware

import (
	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"
)

type ErrorResponse struct {
	Error string `json:"error" description:"Error message"`
}

// HandleError writes a JSON error body. The message is sent as is, so callers
// pass user-facing text, never raw upstream errors.
func HandleError(resp *restful.Response, status int, message string) {
	if err := resp.WriteHeaderAndEntity(status, ErrorResponse{Error: message}); err != nil {
		log.Error().Err(err).Int("status", status).Msg("Failed to write error response")
	}
}
