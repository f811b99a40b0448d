package guardrails

const (
	CategoryHealth   = "health"
	CategoryOffTopic = "off_topic"
	CategoryUnknown  = "unknown"
)

type ValidationResult struct {
	IsValid  bool   `json:"is_valid" jsonschema:"true when the query is health related"`
	Reason   string `json:"reason" jsonschema:"why the query was accepted or rejected"`
	Category string `json:"category" jsonschema:"health, off_topic or unknown"`
	Matched  string `json:"matched,omitempty" jsonschema:"marker phrase that decided the result"`
	Method   string `json:"method" jsonschema:"validator that produced the result"`
}
