package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "sews/internal/delivery/context"
	"sews/internal/domain/entity"
	domainerrors "sews/internal/domain/errors"
	"sews/internal/domain/repository"
	"sews/internal/domain/service"
	"sews/internal/usecase"
	"sews/internal/validator"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// registrationService implements the RegistrationUsecase interface.
type registrationService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	validator *validator.Validator
	metrics   service.AuthMetrics
	now       func() time.Time
	logger    *slog.Logger
}

// RegistrationServiceParams holds dependencies for the registration service, injected by Fx.
type RegistrationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Validator *validator.Validator
	Metrics   service.AuthMetrics
	Logger    *slog.Logger
}

// NewRegistrationService is the constructor for registrationService.
func NewRegistrationService(params RegistrationServiceParams) usecase.RegistrationUsecase {
	return &registrationService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		validator: params.Validator,
		metrics:   params.Metrics,
		now:       time.Now,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *registrationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterCustomer creates a customer account keyed by its lowercased email.
func (srv *registrationService) RegisterCustomer(ctx context.Context, input *usecase.RegisterCustomerInput) (*entity.Customer, error) {
	customer, err := srv.registerCustomer(ctx, input)
	srv.metrics.Registration(entity.PrincipalCustomer, service.OutcomeOf(err))

	return customer, err
}

func (srv *registrationService) registerCustomer(ctx context.Context, raw *usecase.RegisterCustomerInput) (*entity.Customer, error) {
	input := *raw
	input.Email = entity.NormalizeEmail(input.Email)
	if err := srv.validator.Validate(&input); err != nil {
		return nil, err
	}

	email := input.Email
	srv.log(ctx).Info("Starting customer registration", slog.String("email", email))

	customer := &entity.Customer{
		FirstName:  strings.TrimSpace(input.FirstName),
		LastName:   strings.TrimSpace(input.LastName),
		Email:      email,
		IsActive:   true,
		DateJoined: srv.now(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.CustomerRepo()

		exists, err := customerRepo.ExistsByEmail(ctx, email)
		if err != nil {
			return errors.Wrap(err, "failed to check customer email")
		}
		if exists {
			return domainerrors.ErrEmailExists
		}

		customer.PasswordHash, err = srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password during registration")
		}

		return customerRepo.Create(ctx, customer)
	})
	if err != nil {
		srv.logFailure(ctx, entity.PrincipalCustomer, err)

		return nil, errors.Wrap(err, "failed to register customer")
	}

	srv.log(ctx).Info("Customer registered", slog.Any("customer_id", customer.ID))

	return customer, nil
}

// RegisterTailor creates a tailor account. Duplicates are reported in a fixed
// order: username, then email, then national id number.
func (srv *registrationService) RegisterTailor(ctx context.Context, input *usecase.RegisterTailorInput) (*entity.Tailor, error) {
	tailor, err := srv.registerTailor(ctx, input)
	srv.metrics.Registration(entity.PrincipalTailor, service.OutcomeOf(err))

	return tailor, err
}

func (srv *registrationService) registerTailor(ctx context.Context, raw *usecase.RegisterTailorInput) (*entity.Tailor, error) {
	input := *raw
	input.Email = entity.NormalizeEmail(input.Email)
	if err := srv.validator.Validate(&input); err != nil {
		return nil, err
	}

	tailor := &entity.Tailor{
		FullName:           strings.TrimSpace(input.FullName),
		Username:           entity.NormalizeUsername(input.Username),
		Email:              entity.NormalizeEmail(input.Email),
		NationalIDNumber:   strings.TrimSpace(input.NationalIDNumber),
		PhoneNumber:        strings.TrimSpace(input.PhoneNumber),
		AreaOfResidence:    strings.TrimSpace(input.AreaOfResidence),
		AreaOfWork:         strings.TrimSpace(input.AreaOfWork),
		DateOfRegistration: srv.now(),
		IsActive:           true,
	}
	if input.Sex != "" {
		tailor.Sex, _ = entity.ParseSex(input.Sex)
	}
	if tailor.Username == "" {
		return nil, domainerrors.NewValidationError("username is required")
	}

	srv.log(ctx).Info("Starting tailor registration", slog.String("username", tailor.Username))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tailorRepo := repoFactory.TailorRepo()

		if err := srv.checkTailorIdentity(ctx, tailorRepo, tailor); err != nil {
			return err
		}

		var err error
		tailor.PasswordHash, err = srv.hasher.Hash(input.Password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password during registration")
		}

		return tailorRepo.Create(ctx, tailor)
	})
	if err != nil {
		srv.logFailure(ctx, entity.PrincipalTailor, err)

		return nil, errors.Wrap(err, "failed to register tailor")
	}

	srv.log(ctx).Info("Tailor registered", slog.Any("tailor_id", tailor.ID), slog.String("username", tailor.Username))

	return tailor, nil
}

// checkTailorIdentity runs the advisory uniqueness checks; the first hit wins.
// The unique indexes remain the authority when two registrations race.
func (srv *registrationService) checkTailorIdentity(ctx context.Context, tailorRepo repository.TailorRepository, tailor *entity.Tailor) error {
	checks := []struct {
		exists func(context.Context, string) (bool, error)
		value  string
		taken  error
	}{
		{tailorRepo.ExistsByUsername, tailor.Username, domainerrors.ErrUsernameExists},
		{tailorRepo.ExistsByEmail, tailor.Email, domainerrors.ErrEmailExists},
		{tailorRepo.ExistsByNationalID, tailor.NationalIDNumber, domainerrors.ErrNationalIDExists},
	}

	for _, check := range checks {
		exists, err := check.exists(ctx, check.value)
		if err != nil {
			return errors.Wrap(err, "failed to check tailor identity")
		}
		if exists {
			return check.taken
		}
	}

	return nil
}

func (srv *registrationService) logFailure(ctx context.Context, kind entity.PrincipalKind, err error) {
	switch domainerrors.KindOf(err) {
	case domainerrors.KindDuplicateIdentity, domainerrors.KindInvalidInput:
		srv.log(ctx).Warn("Registration rejected", slog.String("kind", kind.String()), slog.String("reason", err.Error()))
	default:
		srv.log(ctx).Error("Registration failed", slog.String("kind", kind.String()), slog.Any("error", err))
	}
}
