package relay

import "errors"

var (
	ErrMissingInput              = errors.New("user query is required")
	ErrProviderCallFailed        = errors.New("provider call failed")
	ErrMalformedProviderResponse = errors.New("provider returned an unusable response")
)

const (
	MsgMissingInput      = "userQuery is required."
	MsgProviderFailed    = "Failed to fetch response from AI."
	MsgMalformedResponse = "Couldn't generate a proper response from AI."
)

// PublicMessage returns the text a caller may see for err. Provider details
// never leave the process.
func PublicMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingInput):
		return MsgMissingInput
	case errors.Is(err, ErrMalformedProviderResponse):
		return MsgMalformedResponse
	default:
		return MsgProviderFailed
	}
}
