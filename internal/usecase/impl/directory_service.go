package impl

import (
	"context"
	"log/slog"

	deliverycontext "sews/internal/delivery/context"
	"sews/internal/domain/entity"
	domainerrors "sews/internal/domain/errors"
	"sews/internal/domain/repository"
	"sews/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// directoryService implements the DirectoryUsecase interface.
// Reads go through the resolver-routed repositories, not a transaction.
type directoryService struct {
	repos  repository.RepositoryFactory
	logger *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(repos repository.RepositoryFactory, logger *slog.Logger) usecase.DirectoryUsecase {
	return &directoryService{
		repos:  repos,
		logger: logger,
	}
}

func (srv *directoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *directoryService) ListCustomers(ctx context.Context) ([]*entity.Customer, error) {
	customers, err := srv.repos.CustomerRepo().List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list customers", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list customers")
	}

	return customers, nil
}

func (srv *directoryService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := srv.repos.CustomerRepo().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to get customer")
	}

	return customer, nil
}

func (srv *directoryService) ListTailors(ctx context.Context) ([]*entity.Tailor, error) {
	tailors, err := srv.repos.TailorRepo().List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list tailors", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list tailors")
	}

	return tailors, nil
}

func (srv *directoryService) GetTailor(ctx context.Context, id uuid.UUID) (*entity.Tailor, error) {
	tailor, err := srv.repos.TailorRepo().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTailorNotFound) {
			return nil, domainerrors.ErrTailorNotFound
		}

		return nil, errors.Wrap(err, "failed to get tailor")
	}

	return tailor, nil
}
