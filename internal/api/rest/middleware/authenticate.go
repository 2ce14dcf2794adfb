package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dtroode/tasklist-server/internal/api/rest/response"
	"github.com/dtroode/tasklist-server/internal/logger"
	"github.com/dtroode/tasklist-server/internal/model"
)

const (
	msgAuthRequired = "Authentication required"
	msgInvalidToken = "Invalid or expired token"
)

// TokenVerifier resolves an identity from a bearer token.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (model.Identity, error)
}

// Authenticate validates bearer tokens and injects the identity into the request context.
type Authenticate struct {
	verifier       TokenVerifier
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(verifier TokenVerifier, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{verifier: verifier, contextManager: contextManager, logger: logger}
}

// Handle rejects requests without a valid "Authorization: Bearer <token>" header.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := bearerToken(r.Header.Get("Authorization"))
		if tokenString == "" {
			response.Error(w, http.StatusUnauthorized, msgAuthRequired)
			return
		}

		identity, err := m.verifier.Verify(r.Context(), tokenString)
		if err != nil || identity.UserID <= 0 {
			m.logger.Debug("Authenticate middleware: token rejected",
				"path", r.URL.Path)
			response.Error(w, http.StatusUnauthorized, msgInvalidToken)
			return
		}

		ctx := m.contextManager.SetIdentityToContext(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
