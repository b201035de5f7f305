package postgres

import (
	"context"

	"sews/internal/domain/entity"
	domainerrors "sews/internal/domain/errors"
	"sews/internal/domain/repository"
	"sews/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type clothingStyleRepository struct {
	db *gorm.DB
}

// NewClothingStyleRepository is the constructor for clothingStyleRepository.
func NewClothingStyleRepository(db *gorm.DB) repository.ClothingStyleRepository {
	return &clothingStyleRepository{db: db}
}

func (repo *clothingStyleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ClothingStyle, error) {
	var styleM model.ClothingStyleModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&styleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClothingStyleNotFound
		}

		return nil, errors.Wrap(err, "failed to find clothing style")
	}

	return toClothingStyleDomain(&styleM), nil
}

func (repo *clothingStyleRepository) List(ctx context.Context, activeOnly bool) ([]*entity.ClothingStyle, error) {
	query := repo.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var styleMs []*model.ClothingStyleModel
	if err := query.Find(&styleMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list clothing styles")
	}

	styles := make([]*entity.ClothingStyle, 0, len(styleMs))
	for _, styleM := range styleMs {
		styles = append(styles, toClothingStyleDomain(styleM))
	}

	return styles, nil
}

func (repo *clothingStyleRepository) Create(ctx context.Context, style *entity.ClothingStyle) error {
	styleM := fromClothingStyleDomain(style)
	if err := repo.db.WithContext(ctx).Create(styleM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("cost must not be negative")
		}
		if isValueOutOfRange(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("value exceeds the allowed size")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create clothing style")
	}

	style.ID = styleM.ID
	style.CreatedAt = styleM.CreatedAt
	style.UpdatedAt = styleM.UpdatedAt

	return nil
}

// Update writes every column, including zero values such as IsActive=false.
func (repo *clothingStyleRepository) Update(ctx context.Context, style *entity.ClothingStyle) error {
	styleM := fromClothingStyleDomain(style)
	result := repo.db.WithContext(ctx).Model(styleM).Select("*").Omit("created_at").Updates(styleM)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("cost must not be negative")
		}
		if isValueOutOfRange(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("value exceeds the allowed size")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update clothing style")
	}
	if result.RowsAffected == 0 {
		return repository.ErrClothingStyleNotFound
	}

	style.UpdatedAt = styleM.UpdatedAt

	return nil
}

func (repo *clothingStyleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ClothingStyleModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete clothing style")
	}
	if result.RowsAffected == 0 {
		return repository.ErrClothingStyleNotFound
	}

	return nil
}

// DeleteAll empties the catalogue and reports how many rows were removed.
func (repo *clothingStyleRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.ClothingStyleModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to clear clothing styles")
	}

	return result.RowsAffected, nil
}

type tailorProductRepository struct {
	db *gorm.DB
}

// NewTailorProductRepository is the constructor for tailorProductRepository.
func NewTailorProductRepository(db *gorm.DB) repository.TailorProductRepository {
	return &tailorProductRepository{db: db}
}

func (repo *tailorProductRepository) ListByTailor(ctx context.Context, tailorID uuid.UUID) ([]*entity.TailorProduct, error) {
	var productMs []*model.TailorProductModel
	err := repo.db.WithContext(ctx).
		Where("tailor_id = ?", tailorID).
		Order("created_at ASC").
		Find(&productMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tailor products")
	}

	products := make([]*entity.TailorProduct, 0, len(productMs))
	for _, productM := range productMs {
		products = append(products, toTailorProductDomain(productM))
	}

	return products, nil
}

func (repo *tailorProductRepository) Create(ctx context.Context, product *entity.TailorProduct) error {
	productM := fromTailorProductDomain(product)
	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrTailorNotFound.WrapMessage("product owner does not exist")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("cost must not be negative")
		}
		if isValueOutOfRange(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("value exceeds the allowed size")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tailor product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func toClothingStyleDomain(data *model.ClothingStyleModel) *entity.ClothingStyle {
	return &entity.ClothingStyle{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Cost:        data.Cost,
		Image:       data.Image,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromClothingStyleDomain(data *entity.ClothingStyle) *model.ClothingStyleModel {
	return &model.ClothingStyleModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Cost:        data.Cost,
		Image:       data.Image,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toTailorProductDomain(data *model.TailorProductModel) *entity.TailorProduct {
	return &entity.TailorProduct{
		ID:                data.ID,
		TailorID:          data.TailorID,
		Category:          entity.ProductCategory(data.Category),
		ProductName:       data.ProductName,
		ProductImage:      data.ProductImage,
		Cost:              data.Cost,
		Description:       data.Description,
		MeasurementGuides: data.MeasurementGuides,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromTailorProductDomain(data *entity.TailorProduct) *model.TailorProductModel {
	return &model.TailorProductModel{
		ID:                data.ID,
		TailorID:          data.TailorID,
		Category:          string(data.Category),
		ProductName:       data.ProductName,
		ProductImage:      data.ProductImage,
		Cost:              data.Cost,
		Description:       data.Description,
		MeasurementGuides: data.MeasurementGuides,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
