package middleware

import (
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	HeaderRequestID    = "X-Request-ID"
	AttributeRequestID = "request_id"
)

// Logger assigns a request id and logs every request once it completes.
func Logger(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	start := time.Now()

	requestID := req.HeaderParameter(HeaderRequestID)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	req.SetAttribute(AttributeRequestID, requestID)
	resp.AddHeader(HeaderRequestID, requestID)

	chain.ProcessFilter(req, resp)

	log.Info().
		Str("request_id", requestID).
		Str("method", req.Request.Method).
		Str("path", req.Request.URL.Path).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("Request handled")
}

func RequestID(req *restful.Request) string {
	if id, ok := req.Attribute(AttributeRequestID).(string); ok {
		return id
	}
	return ""
}
