package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/tasklist-server/internal/model"
)

var (
	// ErrExpired is returned for a well-formed token whose lifetime has passed.
	ErrExpired = errors.New("token has expired")
	// ErrMalformed is returned for tokens that fail signature or claim checks.
	ErrMalformed = errors.New("token is malformed")
)

var _ model.TokenManager = (*JWT)(nil)

// Claims represents JWT claims carrying the session identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// NewJWT creates a new JWT token manager with the provided secret key and token lifetime.
func NewJWT(secretKey string, ttl time.Duration, opts ...Option) *JWT {
	o := buildOptions(opts)
	return &JWT{secretKey: []byte(secretKey), ttl: ttl, now: o.now}
}

// Issue creates a signed token for identity that expires after the configured TTL.
func (j *JWT) Issue(identity model.Identity) (string, error) {
	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(identity.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
		UserID: identity.UserID,
		Email:  identity.Email,
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Parse validates signature and expiry and returns the identity carried by the token.
func (j *JWT) Parse(tokenString string) (model.Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	},
		jwt.WithTimeFunc(j.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.Identity{}, ErrExpired
		}
		return model.Identity{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if !token.Valid || claims.UserID <= 0 {
		return model.Identity{}, ErrMalformed
	}

	return model.Identity{UserID: claims.UserID, Email: claims.Email}, nil
}
