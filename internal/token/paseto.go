package token

import (
	"crypto/sha256"
	"fmt"
	"strconv"
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/google/uuid"

	"github.com/dtroode/tasklist-server/internal/model"
)

var _ model.TokenManager = (*PASETO)(nil)

// PASETO implements TokenManager with v4.local tokens (XChaCha20-Poly1305).
// The symmetric key is the SHA-256 digest of the configured secret.
type PASETO struct {
	key paseto.V4SymmetricKey
	ttl time.Duration
	now func() time.Time
}

// NewPASETO creates a PASETO token manager.
func NewPASETO(secretKey string, ttl time.Duration, opts ...Option) (*PASETO, error) {
	sum := sha256.Sum256([]byte(secretKey))
	key, err := paseto.V4SymmetricKeyFromBytes(sum[:])
	if err != nil {
		return nil, fmt.Errorf("failed to create symmetric key: %w", err)
	}

	o := buildOptions(opts)
	return &PASETO{key: key, ttl: ttl, now: o.now}, nil
}

// Issue creates an encrypted token for identity.
func (p *PASETO) Issue(identity model.Identity) (string, error) {
	now := p.now()

	token := paseto.NewToken()
	token.SetJti(uuid.NewString())
	token.SetSubject(strconv.FormatInt(identity.UserID, 10))
	token.SetIssuedAt(now)
	token.SetExpiration(now.Add(p.ttl))
	token.SetString("email", identity.Email)
	if err := token.Set("user_id", identity.UserID); err != nil {
		return "", fmt.Errorf("failed to set user id claim: %w", err)
	}

	return token.V4Encrypt(p.key, nil), nil
}

// Parse decrypts the token, checks its expiry against the manager clock and returns the identity.
func (p *PASETO) Parse(tokenString string) (model.Identity, error) {
	parser := paseto.NewParserWithoutExpiryCheck()

	token, err := parser.ParseV4Local(p.key, tokenString, nil)
	if err != nil {
		return model.Identity{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	expiresAt, err := token.GetExpiration()
	if err != nil {
		return model.Identity{}, ErrMalformed
	}
	if !p.now().Before(expiresAt) {
		return model.Identity{}, ErrExpired
	}

	var userID int64
	if err := token.Get("user_id", &userID); err != nil || userID <= 0 {
		return model.Identity{}, ErrMalformed
	}

	email, err := token.GetString("email")
	if err != nil {
		return model.Identity{}, ErrMalformed
	}

	return model.Identity{UserID: userID, Email: email}, nil
}
