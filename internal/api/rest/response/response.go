// Package response writes JSON bodies for the REST API.
package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorBody is the shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

// SuccessBody acknowledges mutations that return no resource.
type SuccessBody struct {
	Success bool `json:"success"`
}

// JSON writes data with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err.Error())
	}
}

// Error writes {"error": message} with the given status code.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorBody{Error: message})
}

// Success writes {"success": true} with status 200.
func Success(w http.ResponseWriter) {
	JSON(w, http.StatusOK, SuccessBody{Success: true})
}
