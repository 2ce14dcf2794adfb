package handler

import (
	"errors"
	"net/http"

	"github.com/dtroode/tasklist-server/internal/api/rest/response"
	"github.com/dtroode/tasklist-server/internal/logger"
	"github.com/dtroode/tasklist-server/internal/model"
)

const (
	msgInvalidBody        = "Invalid request body"
	msgBodyTooLarge       = "Request body too large"
	msgInvalidCredentials = "Invalid credentials"
	msgInvalidToken       = "Invalid or expired token"
	msgEmailTaken         = "Email already registered"
	msgTaskNotFound       = "Task not found"
	msgInternal           = "Internal server error"
)

// handleError translates service errors into HTTP responses.
// Unexpected errors are logged and surface only as a generic message.
func handleError(w http.ResponseWriter, err error, log *logger.Logger) {
	var vErr *model.ValidationError
	switch {
	case errors.As(err, &vErr):
		response.Error(w, http.StatusBadRequest, vErr.Message)
	case errors.Is(err, model.ErrInvalidCredentials):
		response.Error(w, http.StatusUnauthorized, msgInvalidCredentials)
	case errors.Is(err, model.ErrInvalidToken):
		response.Error(w, http.StatusUnauthorized, msgInvalidToken)
	case errors.Is(err, model.ErrEmailTaken):
		response.Error(w, http.StatusConflict, msgEmailTaken)
	case errors.Is(err, model.ErrNotFound):
		response.Error(w, http.StatusNotFound, msgTaskNotFound)
	default:
		log.Error("REST handler: unhandled error", "error", err.Error())
		response.Error(w, http.StatusInternalServerError, msgInternal)
	}
}

// handleDecodeError responds to a request body that could not be decoded.
func handleDecodeError(w http.ResponseWriter, err error) {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		response.Error(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
		return
	}
	response.Error(w, http.StatusBadRequest, msgInvalidBody)
}
