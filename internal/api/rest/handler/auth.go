package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dtroode/tasklist-server/internal/api/rest/response"
	"github.com/dtroode/tasklist-server/internal/logger"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	Register(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// Auth handles REST endpoints for authentication.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Register creates an account and responds with a session token.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug("Auth handler: failed to decode registration request",
			"error", err.Error())
		handleDecodeError(w, err)
		return
	}

	token, err := h.authService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: registration failed",
			"error", err.Error())
		handleError(w, err, h.logger)
		return
	}

	response.JSON(w, http.StatusCreated, tokenResponse{Token: token})
}

// Login checks credentials and responds with a session token.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug("Auth handler: failed to decode login request",
			"error", err.Error())
		handleDecodeError(w, err)
		return
	}

	token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: login failed",
			"error", err.Error())
		handleError(w, err, h.logger)
		return
	}

	response.JSON(w, http.StatusOK, tokenResponse{Token: token})
}
