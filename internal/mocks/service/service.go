// Package service provides testify mocks of the domain service contracts.
package service

import (
	"context"
	"time"

	"sews/internal/domain/entity"
	"sews/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockPasswordHasher is a mock of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a mock whose expectations are asserted on cleanup.
func NewMockPasswordHasher(t testingT) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Verify(password, record string) (bool, error) {
	args := m.Called(password, record)

	return args.Bool(0), args.Error(1)
}

// MockTokenService is a mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

// NewMockTokenService creates a mock whose expectations are asserted on cleanup.
func NewMockTokenService(t testingT) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) Issue(principal entity.Principal) (*entity.TokenPair, error) {
	args := m.Called(principal)
	pair, _ := args.Get(0).(*entity.TokenPair)

	return pair, args.Error(1)
}

func (m *MockTokenService) Verify(token string) (*entity.ResolvedIdentity, error) {
	args := m.Called(token)
	identity, _ := args.Get(0).(*entity.ResolvedIdentity)

	return identity, args.Error(1)
}

func (m *MockTokenService) Refresh(refreshToken string) (string, time.Time, error) {
	args := m.Called(refreshToken)
	expiresAt, _ := args.Get(1).(time.Time)

	return args.String(0), expiresAt, args.Error(2)
}

// MockRateLimiter is a mock of service.RateLimiter.
type MockRateLimiter struct {
	mock.Mock
}

// NewMockRateLimiter creates a mock whose expectations are asserted on cleanup.
func NewMockRateLimiter(t testingT) *MockRateLimiter {
	m := &MockRateLimiter{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (service.RateLimitDecision, error) {
	args := m.Called(ctx, key, limit, window)
	decision, _ := args.Get(0).(service.RateLimitDecision)

	return decision, args.Error(1)
}

// MockAuthMetrics is a mock of service.AuthMetrics.
type MockAuthMetrics struct {
	mock.Mock
}

// NewMockAuthMetrics creates a mock whose expectations are asserted on cleanup.
func NewMockAuthMetrics(t testingT) *MockAuthMetrics {
	m := &MockAuthMetrics{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAuthMetrics) LoginAttempt(kind entity.PrincipalKind, outcome string) {
	m.Called(kind, outcome)
}

func (m *MockAuthMetrics) Registration(kind entity.PrincipalKind, outcome string) {
	m.Called(kind, outcome)
}
