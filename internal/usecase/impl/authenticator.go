// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "sews/internal/delivery/context"
	"sews/internal/domain/entity"
	domainerrors "sews/internal/domain/errors"
	"sews/internal/domain/repository"
	"sews/internal/domain/service"
	"sews/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// credentialPolicy describes how one principal kind is looked up and checked.
type credentialPolicy struct {
	normalize func(string) string
	lookup    func(ctx context.Context, repos repository.RepositoryFactory, identifier string) (entity.Principal, error)
	notFound  error
	// requireActive rejects inactive accounts before the password is checked.
	// Only tailors are held to it; customer logins never look at the flag.
	requireActive bool
}

var credentialPolicies = map[entity.PrincipalKind]credentialPolicy{
	entity.PrincipalCustomer: {
		normalize: entity.NormalizeEmail,
		lookup: func(ctx context.Context, repos repository.RepositoryFactory, email string) (entity.Principal, error) {
			customer, err := repos.CustomerRepo().FindByEmail(ctx, email)
			if err != nil {
				return entity.Principal{}, err
			}

			return entity.NewCustomerPrincipal(customer), nil
		},
		notFound: repository.ErrCustomerNotFound,
	},
	entity.PrincipalTailor: {
		normalize: entity.NormalizeUsername,
		lookup: func(ctx context.Context, repos repository.RepositoryFactory, username string) (entity.Principal, error) {
			tailor, err := repos.TailorRepo().FindByUsername(ctx, username)
			if err != nil {
				return entity.Principal{}, err
			}

			return entity.NewTailorPrincipal(tailor), nil
		},
		notFound:      repository.ErrTailorNotFound,
		requireActive: true,
	},
}

type authenticator struct {
	repos  repository.RepositoryFactory
	hasher service.PasswordHasher
	logger *slog.Logger
}

// AuthenticatorParams holds dependencies for the authenticator, injected by Fx.
type AuthenticatorParams struct {
	fx.In

	Repos  repository.RepositoryFactory
	Hasher service.PasswordHasher
	Logger *slog.Logger
}

// NewAuthenticator is the constructor for authenticator.
func NewAuthenticator(params AuthenticatorParams) usecase.AuthUsecase {
	return &authenticator{
		repos:  params.Repos,
		hasher: params.Hasher,
		logger: params.Logger,
	}
}

func (a *authenticator) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, a.logger)
}

// Authenticate resolves identifier to a principal of the given kind and checks the password.
// Unknown identifiers and wrong passwords both return ErrInvalidCredentials.
func (a *authenticator) Authenticate(ctx context.Context, kind entity.PrincipalKind, identifier, password string) (entity.Principal, error) {
	logger := a.log(ctx).With(slog.String("kind", kind.String()))
	logger.Debug("Authentication attempt")

	policy, ok := credentialPolicies[kind]
	if !ok {
		logger.Warn("Authentication rejected", slog.String("reason", "invalid_input"), slog.String("detail", "unknown principal kind"))

		return entity.Principal{}, domainerrors.NewValidationError("unknown principal kind")
	}

	if identifier == "" || password == "" {
		logger.Warn("Authentication rejected", slog.String("reason", "invalid_input"), slog.String("detail", "missing credentials"))

		return entity.Principal{}, domainerrors.ErrCredentialsRequired
	}

	normalized := policy.normalize(identifier)
	if normalized == "" {
		logger.Warn("Authentication rejected", slog.String("reason", "invalid_input"), slog.String("detail", "identifier empty after normalization"))

		return entity.Principal{}, domainerrors.ErrInvalidIdentifier
	}
	logger = logger.With(slog.String("identifier", normalized))

	principal, err := policy.lookup(ctx, a.repos, normalized)
	if err != nil {
		if errors.Is(err, policy.notFound) {
			logger.Warn("Authentication rejected", slog.String("reason", "not_found"))

			return entity.Principal{}, domainerrors.ErrInvalidCredentials
		}
		logger.Error("Failed to look up principal", slog.Any("error", err))

		return entity.Principal{}, errors.Wrap(err, "failed to look up principal")
	}

	if policy.requireActive && !principal.IsActive() {
		logger.Warn("Authentication rejected", slog.String("reason", "inactive"), slog.Any("principal_id", principal.ID()))

		return entity.Principal{}, domainerrors.ErrAccountInactive
	}

	matched, err := a.hasher.Verify(password, principal.PasswordHash())
	if err != nil {
		logger.Error("Stored password record is unusable", slog.Any("principal_id", principal.ID()), slog.Any("error", err))

		return entity.Principal{}, errors.Wrap(err, "failed to verify password")
	}
	if !matched {
		logger.Warn("Authentication rejected", slog.String("reason", "wrong_password"), slog.Any("principal_id", principal.ID()))

		return entity.Principal{}, domainerrors.ErrInvalidCredentials
	}

	logger.Info("Authentication succeeded", slog.Any("principal_id", principal.ID()))

	return principal, nil
}

// throttleKey identifies the login counter of one account.
func throttleKey(kind entity.PrincipalKind, identifier string) string {
	if policy, ok := credentialPolicies[kind]; ok {
		identifier = policy.normalize(identifier)
	}

	return "login:" + kind.String() + ":" + strings.TrimSpace(identifier)
}
