package repository

import (
	"context"
	"errors"

	"sews/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTailorNotFound is returned when no tailor matches a lookup.
var ErrTailorNotFound = errors.New("tailor not found")

// TailorRepository is the credential store for tailor accounts.
// Username and email comparisons are case-insensitive.
type TailorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tailor, error)
	FindByUsername(ctx context.Context, username string) (*entity.Tailor, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByNationalID(ctx context.Context, nationalID string) (bool, error)

	// Create persists a new tailor. DateOfRegistration is written once here and never updated.
	Create(ctx context.Context, tailor *entity.Tailor) error

	// List returns every tailor ordered by username.
	List(ctx context.Context) ([]*entity.Tailor, error)
}
