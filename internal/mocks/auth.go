package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/tasklist-server/internal/model"
)

// TokenManager is a mock of model.TokenManager.
type TokenManager struct {
	mock.Mock
}

func NewTokenManager(t TestingT) *TokenManager {
	m := &TokenManager{}
	register(&m.Mock, t)
	return m
}

func (m *TokenManager) Issue(identity model.Identity) (string, error) {
	ret := m.Called(identity)
	return ret.String(0), ret.Error(1)
}

func (m *TokenManager) Parse(token string) (model.Identity, error) {
	ret := m.Called(token)
	identity, _ := ret.Get(0).(model.Identity)
	return identity, ret.Error(1)
}

// PasswordHasher is a mock of model.PasswordHasher.
type PasswordHasher struct {
	mock.Mock
}

func NewPasswordHasher(t TestingT) *PasswordHasher {
	m := &PasswordHasher{}
	register(&m.Mock, t)
	return m
}

func (m *PasswordHasher) Hash(password string) (string, error) {
	ret := m.Called(password)
	return ret.String(0), ret.Error(1)
}

func (m *PasswordHasher) Compare(hash, password string) error {
	return m.Called(hash, password).Error(0)
}

// AuthService is a mock of the REST auth handler dependency.
type AuthService struct {
	mock.Mock
}

func NewAuthService(t TestingT) *AuthService {
	m := &AuthService{}
	register(&m.Mock, t)
	return m
}

func (m *AuthService) Register(ctx context.Context, email, password string) (string, error) {
	ret := m.Called(ctx, email, password)
	return ret.String(0), ret.Error(1)
}

func (m *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	ret := m.Called(ctx, email, password)
	return ret.String(0), ret.Error(1)
}

func (m *AuthService) Verify(ctx context.Context, token string) (model.Identity, error) {
	ret := m.Called(ctx, token)
	identity, _ := ret.Get(0).(model.Identity)
	return identity, ret.Error(1)
}
