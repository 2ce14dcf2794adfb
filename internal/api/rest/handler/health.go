package handler

import (
	"net/http"

	"github.com/dtroode/tasklist-server/internal/api/rest/response"
)

type healthResponse struct {
	OK bool `json:"ok"`
}

// Health reports that the process is serving requests.
func Health(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, healthResponse{OK: true})
}
