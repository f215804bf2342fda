package errors

import (
	"encoding/json"
)

// ErrorResponse is the wire form of an error, as printed by the CLI with
// -o json. Only the outermost message is kept; causes are dropped.
type ErrorResponse struct {
	Code           string         `json:"code"`
	Message        string         `json:"message"`
	Classification string         `json:"classification"`
	Context        map[string]any `json:"context,omitempty"`
}

func response(e Error) *ErrorResponse {
	return &ErrorResponse{
		Code:           string(e.Code()),
		Message:        e.Message(),
		Classification: string(e.Classification()),
		Context:        e.Context(),
	}
}

// ToJSON describes err as an ErrorResponse, or returns nil for a nil err.
// An error without a code is reported as UNKNOWN with its full text.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}
	var e Error
	if As(err, &e) {
		return response(e)
	}
	return &ErrorResponse{
		Code:           string(CodeUnknown),
		Message:        err.Error(),
		Classification: string(ClassificationPermanent),
	}
}

func (e *fsError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(response(e))
	if err != nil {
		return nil, Wrap(err, CodeInternal, "failed to marshal error response")
	}
	return data, nil
}
