package api

import (
	"encoding/json"
	"net/http"
)

// envelope is the standard response body for all endpoints.
type envelope struct {
	StatusCode int    `json:"status_code"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
	RequestID  string `json:"request_id,omitempty"`
	Data       any    `json:"data,omitempty"`
}

// respondJSON writes v as application/json with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondOK writes a 200 envelope with data.
func respondOK(w http.ResponseWriter, r *http.Request, data any) {
	respondJSON(w, http.StatusOK, envelope{
		StatusCode: http.StatusOK,
		Status:     "ok",
		RequestID:  requestID(r.Context()),
		Data:       data,
	})
}

// respondError writes an error envelope with the given status.
func respondError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	respondJSON(w, status, envelope{
		StatusCode: status,
		Status:     "error",
		Error:      msg,
		RequestID:  requestID(r.Context()),
	})
}
