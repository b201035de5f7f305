package usecase

import (
	"context"

	"sews/internal/domain/entity"

	"github.com/google/uuid"
)

// DirectoryUsecase lists and looks up registered accounts.
type DirectoryUsecase interface {
	ListCustomers(ctx context.Context) ([]*entity.Customer, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	ListTailors(ctx context.Context) ([]*entity.Tailor, error)
	GetTailor(ctx context.Context, id uuid.UUID) (*entity.Tailor, error)
}
