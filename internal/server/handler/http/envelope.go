package http

import (
	"encoding/json"
	"net/http"
)

// envelope is the uniform response shape: callers check Success before
// trusting Data; Message carries the user-facing error text.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// listPayload wraps admin list responses the way the dashboard expects
// them, leaving room for pagination metadata.
type listPayload struct {
	Data any `json:"data"`
}

func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: false, Message: message})
}
