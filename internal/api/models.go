package api

type ChatRequest struct {
	UserQuery string `json:"userQuery" description:"The user's health question"`
	Lang      string `json:"lang,omitempty" description:"Language code for the answer (default: en)"`
}

type ChatResponse struct {
	Text string `json:"text" description:"Generated answer or the off-topic refusal"`
}

type HealthResponse struct {
	Status  string `json:"status" description:"Service status"`
	Version string `json:"version" description:"API version"`
}
