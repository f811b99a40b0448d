package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/health-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/health-agent/internal/metrics"
	"github.com/povarna/generative-ai-agents/health-agent/internal/relay"
	"github.com/rs/zerolog"
)

type Responder interface {
	Respond(ctx context.Context, query string, lang string) (relay.Answer, error)
}

type Handler struct {
	relay  Responder
	logger *zerolog.Logger
}

func NewHandler(responder Responder, logger *zerolog.Logger) *Handler {
	return &Handler{
		relay:  responder,
		logger: logger,
	}
}

// Chat handles POST /api/chat
func (h *Handler) Chat(req *restful.Request, resp *restful.Response) {
	var chatRequest ChatRequest

	// The body is JSON whatever the Content-Type says. An empty body is
	// treated like {} and rejected as missing input below.
	if err := json.NewDecoder(req.Request.Body).Decode(&chatRequest); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn().Err(err).Msg("Failed to parse request body")
		metrics.ObserveOutcome(metrics.OutcomeBadRequest)
		middleware.HandleError(resp, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	h.logger.Info().
		Str("request_id", middleware.RequestID(req)).
		Str("lang", chatRequest.Lang).
		Int("query_length", len(chatRequest.UserQuery)).
		Msg("Process chat request")

	// A caller that disconnects does not abort the provider call
	ctx := context.WithoutCancel(req.Request.Context())

	answer, err := h.relay.Respond(ctx, chatRequest.UserQuery, chatRequest.Lang)
	if err != nil {
		status, message := StatusFor(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error().Err(err).Str("request_id", middleware.RequestID(req)).Msg("Failed to answer chat request")
		}
		middleware.HandleError(resp, status, message)
		return
	}

	h.logger.Info().
		Str("request_id", middleware.RequestID(req)).
		Bool("off_topic", answer.OffTopic).
		Str("model", answer.Model).
		Msg("Chat request answered")

	resp.WriteHeaderAndEntity(http.StatusOK, ChatResponse{Text: answer.Text})
}

// Health handler GET /api/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}
