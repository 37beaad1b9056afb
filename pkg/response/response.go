// Package response writes the JSON bodies returned by the product API.
//
// Successful responses carry a human readable message plus the payload under
// a caller chosen key ("data" for collections, "product" for one record).
// Failures carry only {"error": "..."}.
package response

import (
	"encoding/json"
	"net/http"
)

// Body is a JSON object response.
type Body map[string]any

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// Message sends {"message": msg}.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, Body{"message": msg})
}

// WithPayload sends {"message": msg, key: payload}.
func WithPayload(w http.ResponseWriter, status int, msg, key string, payload any) {
	JSON(w, status, Body{"message": msg, key: payload})
}

// Error sends {"error": msg}.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, Body{"error": msg})
}

// NotFound sends a 404 with the given error message.
func NotFound(w http.ResponseWriter, msg string) {
	Error(w, http.StatusNotFound, msg)
}
