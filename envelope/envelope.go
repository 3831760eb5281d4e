package envelope

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Response codes. Every request outcome maps to exactly one of these; the
// HTTP status is always 200 and the semantic result travels in the body.
const (
	CodeOK                 = 0
	CodeRequire            = 1
	CodeMethodNotFound     = 2
	CodeMethodNotSupported = 3
	CodeNotFound           = 4
	CodeEmpty              = 5
	CodeInvalid            = 6
	CodePermissionDenied   = 7
	CodeNeedAuth           = 8
	CodeError              = -2
)

// Envelope is the uniform two-field response body.
type Envelope struct {
	Code int `json:"code"`
	Data any `json:"data"`
}

// New builds an envelope. A nil data value is normalized to an empty object
// so the body is always {code, data}.
func New(code int, data any) *Envelope {
	if data == nil {
		data = map[string]any{}
	}
	return &Envelope{Code: code, Data: data}
}

// OK builds a success envelope.
func OK(data any) *Envelope {
	return New(CodeOK, data)
}

// Write serializes the envelope as the HTTP response. Domain errors are not
// HTTP errors: the status is 200 regardless of the code.
func (e *Envelope) Write(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(e); err != nil {
		slog.Error("failed to encode response envelope", "error", err)
	}
}
