package impl

import (
	"context"
	"log/slog"

	"sews/config"
	deliverycontext "sews/internal/delivery/context"
	"sews/internal/domain/entity"
	domainerrors "sews/internal/domain/errors"
	"sews/internal/domain/repository"
	"sews/internal/domain/service"
	"sews/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	auth      usecase.AuthUsecase
	tokens    service.TokenService
	limiter   service.RateLimiter
	metrics   service.AuthMetrics
	repos     repository.RepositoryFactory
	rateLimit config.LoginRateLimitConfig
	logger    *slog.Logger
}

// SessionServiceParams holds dependencies for the session service, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Auth    usecase.AuthUsecase
	Tokens  service.TokenService
	Limiter service.RateLimiter
	Metrics service.AuthMetrics
	Repos   repository.RepositoryFactory
	Config  *config.Config
	Logger  *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	var rateLimit config.LoginRateLimitConfig
	if params.Config != nil && params.Config.Auth != nil {
		rateLimit = params.Config.Auth.LoginRateLimit
	}

	return &sessionService{
		auth:      params.Auth,
		tokens:    params.Tokens,
		limiter:   params.Limiter,
		metrics:   params.Metrics,
		repos:     params.Repos,
		rateLimit: rateLimit,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates the credentials and mints a token pair for the principal.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if err := srv.throttle(ctx, input); err != nil {
		srv.metrics.LoginAttempt(input.Kind, service.OutcomeOf(err))

		return nil, err
	}

	principal, err := srv.auth.Authenticate(ctx, input.Kind, input.Identifier, input.Password)
	if err != nil {
		srv.metrics.LoginAttempt(input.Kind, service.OutcomeOf(err))

		return nil, err
	}

	tokens, err := srv.tokens.Issue(principal)
	if err != nil {
		srv.log(ctx).Error("Failed to issue tokens", slog.String("kind", input.Kind.String()), slog.Any("principal_id", principal.ID()), slog.Any("error", err))
		srv.metrics.LoginAttempt(input.Kind, service.OutcomeUnavailable)

		return nil, domainerrors.ErrTokenIssueFailed
	}

	srv.metrics.LoginAttempt(input.Kind, service.OutcomeSuccess)

	return &usecase.LoginOutput{Principal: principal, Tokens: tokens}, nil
}

// throttle counts the attempt against the per-account window.
// Limiter failures are logged and the attempt is let through.
func (srv *sessionService) throttle(ctx context.Context, input *usecase.LoginInput) error {
	if srv.limiter == nil || srv.rateLimit.Requests <= 0 || input.Identifier == "" {
		return nil
	}

	key := throttleKey(input.Kind, input.Identifier)
	decision, err := srv.limiter.Allow(ctx, key, srv.rateLimit.Requests, srv.rateLimit.Window)
	if err != nil {
		srv.log(ctx).Warn("Login limiter unavailable, allowing attempt", slog.String("key", key), slog.Any("error", err))

		return nil
	}
	if !decision.Allowed {
		srv.log(ctx).Warn("Login attempt throttled", slog.String("key", key), slog.Time("reset_at", decision.ResetAt))

		return domainerrors.ErrTooManyAttempts
	}

	return nil
}

// Refresh exchanges a refresh token for a new access token.
func (srv *sessionService) Refresh(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	if refreshToken == "" {
		return nil, domainerrors.ErrTokenMalformed
	}

	accessToken, expiresAt, err := srv.tokens.Refresh(refreshToken)
	if err != nil {
		srv.log(ctx).Debug("Refresh rejected", slog.Any("error", err))

		return nil, err
	}

	return &usecase.RefreshOutput{AccessToken: accessToken, ExpiresAt: expiresAt}, nil
}

// Resolve loads the account behind a verified identity.
func (srv *sessionService) Resolve(ctx context.Context, identity *entity.ResolvedIdentity) (entity.Principal, error) {
	if identity == nil {
		return entity.Principal{}, domainerrors.ErrUnauthenticated
	}

	switch identity.Kind {
	case entity.PrincipalCustomer:
		customer, err := srv.repos.CustomerRepo().FindByID(ctx, identity.PrincipalID)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return entity.Principal{}, domainerrors.ErrCustomerNotFound
			}

			return entity.Principal{}, errors.Wrap(err, "failed to load customer")
		}

		return entity.NewCustomerPrincipal(customer), nil
	case entity.PrincipalTailor:
		tailor, err := srv.repos.TailorRepo().FindByID(ctx, identity.PrincipalID)
		if err != nil {
			if errors.Is(err, repository.ErrTailorNotFound) {
				return entity.Principal{}, domainerrors.ErrTailorNotFound
			}

			return entity.Principal{}, errors.Wrap(err, "failed to load tailor")
		}

		return entity.NewTailorPrincipal(tailor), nil
	default:
		return entity.Principal{}, domainerrors.ErrTokenMalformed
	}
}
