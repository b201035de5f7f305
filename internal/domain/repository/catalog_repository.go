package repository

import (
	"context"
	"errors"

	"sews/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrClothingStyleNotFound is returned when no clothing style matches a lookup.
var ErrClothingStyleNotFound = errors.New("clothing style not found")

// ClothingStyleRepository stores catalogue styles, ordered by name when listed.
type ClothingStyleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ClothingStyle, error)
	List(ctx context.Context, activeOnly bool) ([]*entity.ClothingStyle, error)
	Create(ctx context.Context, style *entity.ClothingStyle) error
	Update(ctx context.Context, style *entity.ClothingStyle) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAll(ctx context.Context) (int64, error)
}

// TailorProductRepository stores the products tailors offer.
type TailorProductRepository interface {
	ListByTailor(ctx context.Context, tailorID uuid.UUID) ([]*entity.TailorProduct, error)
	Create(ctx context.Context, product *entity.TailorProduct) error
}
