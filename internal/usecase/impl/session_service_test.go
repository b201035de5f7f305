package impl

import (
	"context"
	"testing"
	"time"

	"sews/config"
	"sews/internal/domain/entity"
	domainerrors "sews/internal/domain/errors"
	"sews/internal/domain/repository"
	"sews/internal/domain/service"
	mockRepo "sews/internal/mocks/repository"
	mockService "sews/internal/mocks/service"
	"sews/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuth returns a fixed result and counts calls.
type stubAuth struct {
	principal entity.Principal
	err       error
	calls     int
}

func (s *stubAuth) Authenticate(context.Context, entity.PrincipalKind, string, string) (entity.Principal, error) {
	s.calls++

	return s.principal, s.err
}

type sessionFixture struct {
	auth    *stubAuth
	tokens  *mockService.MockTokenService
	limiter *mockService.MockRateLimiter
	metrics *mockService.MockAuthMetrics
	factory *mockRepo.MockRepositoryFactory
}

func newSessionFixture(t *testing.T) *sessionFixture {
	return &sessionFixture{
		auth:    &stubAuth{},
		tokens:  mockService.NewMockTokenService(t),
		limiter: mockService.NewMockRateLimiter(t),
		metrics: mockService.NewMockAuthMetrics(t),
		factory: mockRepo.NewMockRepositoryFactory(t),
	}
}

func (f *sessionFixture) service(requests int) usecase.SessionUsecase {
	return NewSessionService(SessionServiceParams{
		Auth:    f.auth,
		Tokens:  f.tokens,
		Limiter: f.limiter,
		Metrics: f.metrics,
		Repos:   f.factory,
		Config: &config.Config{Auth: &config.AuthConfig{
			LoginRateLimit: config.LoginRateLimitConfig{Requests: requests, Window: time.Minute},
		}},
		Logger: newDiscardLogger(),
	})
}

func TestSessionService_Login_IssuesTokens(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	tailor := activeTailor()
	f.auth.principal = entity.NewTailorPrincipal(tailor)
	pair := &entity.TokenPair{AccessToken: "a", RefreshToken: "r"}

	f.tokens.On("Issue", f.auth.principal).Return(pair, nil).Once()
	f.metrics.On("LoginAttempt", entity.PrincipalTailor, service.OutcomeSuccess).Once()

	out, err := f.service(0).Login(ctx, &usecase.LoginInput{Kind: entity.PrincipalTailor, Identifier: "Jane@", Password: "pw1"})

	require.NoError(t, err)
	assert.Equal(t, pair, out.Tokens)
	assert.Equal(t, "jane", out.Principal.Identifier())
}

func TestSessionService_Login_AuthFailureRecorded(t *testing.T) {
	f := newSessionFixture(t)
	f.auth.err = domainerrors.ErrInvalidCredentials

	f.metrics.On("LoginAttempt", entity.PrincipalCustomer, service.OutcomeInvalidCredentials).Once()

	out, err := f.service(0).Login(context.Background(), &usecase.LoginInput{Kind: entity.PrincipalCustomer, Identifier: "nouser@x.com", Password: "x"})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	f.tokens.AssertNotCalled(t, "Issue")
}

func TestSessionService_Login_IssueFailureIsServiceUnavailable(t *testing.T) {
	f := newSessionFixture(t)
	f.auth.principal = entity.NewTailorPrincipal(activeTailor())

	f.tokens.On("Issue", f.auth.principal).Return(nil, errors.New("signing key unavailable")).Once()
	f.metrics.On("LoginAttempt", entity.PrincipalTailor, service.OutcomeUnavailable).Once()

	_, err := f.service(0).Login(context.Background(), &usecase.LoginInput{Kind: entity.PrincipalTailor, Identifier: "jane", Password: "pw1"})

	assert.True(t, errors.Is(err, domainerrors.ErrTokenIssueFailed))
	assert.Equal(t, domainerrors.KindServiceUnavailable, domainerrors.KindOf(err))
	assert.NotContains(t, err.Error(), "signing key")
}

func TestSessionService_Login_Throttled(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.limiter.On("Allow", ctx, "login:tailor:jane", 3, time.Minute).
		Return(service.RateLimitDecision{Allowed: false, Limit: 3}, nil).Once()
	f.metrics.On("LoginAttempt", entity.PrincipalTailor, service.OutcomeRateLimited).Once()

	_, err := f.service(3).Login(ctx, &usecase.LoginInput{Kind: entity.PrincipalTailor, Identifier: " Jane@ ", Password: "pw1"})

	assert.True(t, errors.Is(err, domainerrors.ErrTooManyAttempts))
	assert.Zero(t, f.auth.calls)
}

func TestSessionService_Login_LimiterErrorFailsOpen(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	f.auth.principal = entity.NewCustomerPrincipal(&entity.Customer{ID: uuid.New(), Email: "ann@x.com"})

	f.limiter.On("Allow", ctx, "login:customer:ann@x.com", 3, time.Minute).
		Return(service.RateLimitDecision{}, errors.New("redis down")).Once()
	f.tokens.On("Issue", f.auth.principal).Return(&entity.TokenPair{AccessToken: "a"}, nil).Once()
	f.metrics.On("LoginAttempt", entity.PrincipalCustomer, service.OutcomeSuccess).Once()

	out, err := f.service(3).Login(ctx, &usecase.LoginInput{Kind: entity.PrincipalCustomer, Identifier: "Ann@x.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "a", out.Tokens.AccessToken)
	assert.Equal(t, 1, f.auth.calls)
}

func TestSessionService_Refresh(t *testing.T) {
	f := newSessionFixture(t)
	expiresAt := time.Date(2025, 1, 1, 0, 5, 0, 0, time.UTC)

	f.tokens.On("Refresh", "refresh-token").Return("new-access", expiresAt, nil).Once()
	f.tokens.On("Refresh", "access-token").Return("", time.Time{}, domainerrors.ErrTokenMalformed).Once()

	svc := f.service(0)

	out, err := svc.Refresh(context.Background(), "refresh-token")
	require.NoError(t, err)
	assert.Equal(t, "new-access", out.AccessToken)
	assert.Equal(t, expiresAt, out.ExpiresAt)

	_, err = svc.Refresh(context.Background(), "access-token")
	assert.True(t, errors.Is(err, domainerrors.ErrTokenMalformed))

	_, err = svc.Refresh(context.Background(), "")
	assert.True(t, errors.Is(err, domainerrors.ErrTokenMalformed))
}

func TestSessionService_Resolve(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	tailors := mockRepo.NewMockTailorRepository(t)
	customers := mockRepo.NewMockCustomerRepository(t)
	f.factory.On("TailorRepo").Return(tailors)
	f.factory.On("CustomerRepo").Return(customers)

	tailor := activeTailor()
	missing := uuid.New()
	tailors.On("FindByID", ctx, tailor.ID).Return(tailor, nil).Once()
	customers.On("FindByID", ctx, missing).Return(nil, repository.ErrCustomerNotFound).Once()

	svc := f.service(0)

	principal, err := svc.Resolve(ctx, &entity.ResolvedIdentity{PrincipalID: tailor.ID, Kind: entity.PrincipalTailor})
	require.NoError(t, err)
	assert.Equal(t, tailor, principal.Tailor)

	_, err = svc.Resolve(ctx, &entity.ResolvedIdentity{PrincipalID: missing, Kind: entity.PrincipalCustomer})
	assert.True(t, errors.Is(err, domainerrors.ErrCustomerNotFound))

	_, err = svc.Resolve(ctx, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}
