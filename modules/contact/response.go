package contact

import (
	"encoding/json"
	"net/http"
)

// Client-facing error codes. The shape is fixed: either {"ok":true} or
// {"error":"<code>"}; nothing else ever crosses the handler boundary.
const (
	CodeMissingFields   = "missing_fields"
	CodeInvalidEmail    = "invalid_email"
	CodeSpam            = "spam"
	CodeRateLimited     = "rate_limited"
	CodeServerMisconfig = "server_misconfigured"
	CodeFailedToSend    = "failed_to_send"
)

type okResponse struct {
	OK bool `json:"ok"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeOK(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(okResponse{OK: true})
}

func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: code})
}
