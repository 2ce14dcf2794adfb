package context

import (
	"context"

	"github.com/dtroode/tasklist-server/internal/model"
)

type identityKey struct{}

// Manager represents a request context manager for the authenticated identity.
type Manager struct{}

// NewManager creates a new context manager instance.
//
// Returns a pointer to the newly created Manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetIdentityToContext stores the verified identity on the request context.
//
// Parameters:
//   - ctx: The request context
//   - identity: The identity taken from a verified session token
//
// Returns a new context carrying the identity.
func (m *Manager) SetIdentityToContext(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentityFromContext retrieves the identity stored by SetIdentityToContext.
//
// Parameters:
//   - ctx: The request context
//
// Returns the identity and a boolean indicating if a valid identity was found.
func (m *Manager) GetIdentityFromContext(ctx context.Context) (model.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(model.Identity)
	if !ok || identity.UserID <= 0 {
		return model.Identity{}, false
	}
	return identity, true
}
