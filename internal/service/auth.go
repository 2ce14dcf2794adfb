package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dtroode/tasklist-server/internal/logger"
	"github.com/dtroode/tasklist-server/internal/model"
)

// bcrypt only looks at the first 72 bytes of a password.
const maxPasswordBytes = 72

// unknownUserPassword is hashed once at startup; logins for unknown emails compare
// against that hash so they take as long as a wrong password.
const unknownUserPassword = "unknown-user-placeholder"

type Auth struct {
	userStore         model.UserStore
	tokenManager      model.TokenManager
	hasher            model.PasswordHasher
	minPasswordLength int
	logger            *logger.Logger

	unknownUserHash string
}

func NewAuth(
	userStore model.UserStore,
	tokenManager model.TokenManager,
	hasher model.PasswordHasher,
	minPasswordLength int,
	logger *logger.Logger,
) *Auth {
	a := &Auth{
		userStore:         userStore,
		tokenManager:      tokenManager,
		hasher:            hasher,
		minPasswordLength: minPasswordLength,
		logger:            logger,
	}

	hash, err := hasher.Hash(unknownUserPassword)
	if err != nil {
		logger.Error("Auth service: failed to prepare unknown user hash",
			"error", err.Error())
	}
	a.unknownUserHash = hash

	return a
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *Auth) validateCredentials(email, password string) error {
	if email == "" || !strings.Contains(email, "@") {
		return model.NewValidationError("email", "A valid email is required")
	}
	if utf8.RuneCountInString(password) < a.minPasswordLength {
		return model.NewValidationError("password",
			fmt.Sprintf("Password must be at least %d characters", a.minPasswordLength))
	}
	if len(password) > maxPasswordBytes {
		return model.NewValidationError("password",
			fmt.Sprintf("Password must be at most %d bytes", maxPasswordBytes))
	}
	return nil
}

// Register creates a new account and returns a session token for it.
func (a *Auth) Register(ctx context.Context, email, password string) (string, error) {
	email = NormalizeEmail(email)

	a.logger.Debug("Auth service: starting user registration",
		"email", email)

	if err := a.validateCredentials(email, password); err != nil {
		return "", err
	}

	existingUser, err := a.userStore.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}
	if existingUser.ID != 0 {
		a.logger.Info("Auth service: user already exists",
			"email", email)
		return "", model.ErrEmailTaken
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{Email: email, PasswordHash: hash})
	if errors.Is(err, model.ErrEmailTaken) {
		a.logger.Info("Auth service: concurrent registration lost the race",
			"email", email)
		return "", model.ErrEmailTaken
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := a.issue(user)
	if err != nil {
		return "", err
	}

	a.logger.Info("Auth service: user registered successfully",
		"user_id", user.ID)

	return token, nil
}

// Login checks credentials and returns a session token.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (a *Auth) Login(ctx context.Context, email, password string) (string, error) {
	email = NormalizeEmail(email)

	a.logger.Debug("Auth service: starting user login",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: login for unknown email",
			"email", email)
		if a.unknownUserHash != "" {
			_ = a.hasher.Compare(a.unknownUserHash, password)
		}
		return "", model.ErrInvalidCredentials
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := a.hasher.Compare(user.PasswordHash, password); err != nil {
		a.logger.Info("Auth service: password mismatch",
			"user_id", user.ID)
		return "", model.ErrInvalidCredentials
	}

	token, err := a.issue(user)
	if err != nil {
		return "", err
	}

	a.logger.Info("Auth service: user logged in successfully",
		"user_id", user.ID)

	return token, nil
}

// Verify validates a session token and returns its identity.
func (a *Auth) Verify(ctx context.Context, token string) (model.Identity, error) {
	identity, err := a.tokenManager.Parse(token)
	if err != nil {
		a.logger.Debug("Auth service: token rejected",
			"error", err.Error())
		return model.Identity{}, model.ErrInvalidToken
	}

	return identity, nil
}

func (a *Auth) issue(user model.User) (string, error) {
	token, err := a.tokenManager.Issue(model.Identity{UserID: user.ID, Email: user.Email})
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"user_id", user.ID,
			"error", err.Error())
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}
