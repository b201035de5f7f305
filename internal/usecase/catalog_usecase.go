package usecase

import (
	"context"

	"sews/internal/domain/entity"

	"github.com/google/uuid"
)

// CatalogUsecase manages clothing styles and the products tailors offer.
type CatalogUsecase interface {
	ListClothingStyles(ctx context.Context, activeOnly bool) ([]*entity.ClothingStyle, error)
	GetClothingStyle(ctx context.Context, id uuid.UUID) (*entity.ClothingStyle, error)
	CreateClothingStyle(ctx context.Context, input *ClothingStyleInput) (*entity.ClothingStyle, error)
	UpdateClothingStyle(ctx context.Context, id uuid.UUID, input *ClothingStyleUpdateInput) (*entity.ClothingStyle, error)
	DeleteClothingStyle(ctx context.Context, id uuid.UUID) error
	// ReplaceClothingStyles empties the catalogue and inserts styles in one transaction.
	ReplaceClothingStyles(ctx context.Context, styles []*ClothingStyleInput) (int, error)

	ListTailorProducts(ctx context.Context, tailorID uuid.UUID) ([]*entity.TailorProduct, error)
	CreateTailorProduct(ctx context.Context, tailorID uuid.UUID, input *TailorProductInput) (*entity.TailorProduct, error)
}

// ClothingStyleInput holds the fields of a new clothing style.
type ClothingStyleInput struct {
	Name        string  `json:"name" validate:"notblank,max=100"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost" validate:"gte=0,lt=100000000"`
	Image       string  `json:"image" validate:"omitempty,url,max=500"`
	IsActive    *bool   `json:"isActive"`
}

// ClothingStyleUpdateInput is a partial update; nil fields keep their value.
type ClothingStyleUpdateInput struct {
	Name        *string  `json:"name" validate:"omitempty,notblank,max=100"`
	Description *string  `json:"description"`
	Cost        *float64 `json:"cost" validate:"omitempty,gte=0,lt=100000000"`
	Image       *string  `json:"image" validate:"omitempty,url,max=500"`
	IsActive    *bool    `json:"isActive"`
}

// TailorProductInput holds the fields of a new tailor product.
type TailorProductInput struct {
	Category          string  `json:"category" validate:"required,category"`
	ProductName       string  `json:"productName" validate:"notblank,max=255"`
	ProductImage      string  `json:"productImage" validate:"omitempty,url,max=500"`
	Cost              float64 `json:"cost" validate:"gte=0,lt=100000000"`
	Description       string  `json:"description"`
	MeasurementGuides string  `json:"measurementGuides"`
}
