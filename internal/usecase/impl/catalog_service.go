package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "sews/internal/delivery/context"
	"sews/internal/domain/entity"
	domainerrors "sews/internal/domain/errors"
	"sews/internal/domain/repository"
	"sews/internal/usecase"
	"sews/internal/validator"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	repos     repository.RepositoryFactory
	txManager repository.TransactionManager
	validator *validator.Validator
	logger    *slog.Logger
}

// CatalogServiceParams holds dependencies for the catalog service, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Repos     repository.RepositoryFactory
	TxManager repository.TransactionManager
	Validator *validator.Validator
	Logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		repos:     params.Repos,
		txManager: params.TxManager,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) ListClothingStyles(ctx context.Context, activeOnly bool) ([]*entity.ClothingStyle, error) {
	styles, err := srv.repos.ClothingStyleRepo().List(ctx, activeOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list clothing styles")
	}

	return styles, nil
}

func (srv *catalogService) GetClothingStyle(ctx context.Context, id uuid.UUID) (*entity.ClothingStyle, error) {
	style, err := srv.repos.ClothingStyleRepo().FindByID(ctx, id)
	if err != nil {
		return nil, mapStyleNotFound(err, "failed to get clothing style")
	}

	return style, nil
}

// CreateClothingStyle adds a style. New styles are active unless IsActive is explicitly false.
func (srv *catalogService) CreateClothingStyle(ctx context.Context, input *usecase.ClothingStyleInput) (*entity.ClothingStyle, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	style := newClothingStyle(input)
	if err := srv.repos.ClothingStyleRepo().Create(ctx, style); err != nil {
		srv.log(ctx).Error("Failed to create clothing style", slog.String("name", style.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create clothing style")
	}

	srv.log(ctx).Info("Clothing style created", slog.Any("style_id", style.ID), slog.String("name", style.Name))

	return style, nil
}

// UpdateClothingStyle applies a partial update inside a transaction.
func (srv *catalogService) UpdateClothingStyle(ctx context.Context, id uuid.UUID, input *usecase.ClothingStyleUpdateInput) (*entity.ClothingStyle, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}

	var updated *entity.ClothingStyle
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		styleRepo := repoFactory.ClothingStyleRepo()

		style, err := styleRepo.FindByID(ctx, id)
		if err != nil {
			return mapStyleNotFound(err, "failed to load clothing style")
		}

		patch := entity.ClothingStylePatch{
			Name:        trimmedPtr(input.Name),
			Description: input.Description,
			Cost:        input.Cost,
			Image:       trimmedPtr(input.Image),
			IsActive:    input.IsActive,
		}
		patch.Apply(style)

		if err := styleRepo.Update(ctx, style); err != nil {
			return mapStyleNotFound(err, "failed to update clothing style")
		}
		updated = style

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update clothing style")
	}

	srv.log(ctx).Info("Clothing style updated", slog.Any("style_id", id))

	return updated, nil
}

func (srv *catalogService) DeleteClothingStyle(ctx context.Context, id uuid.UUID) error {
	if err := srv.repos.ClothingStyleRepo().Delete(ctx, id); err != nil {
		return mapStyleNotFound(err, "failed to delete clothing style")
	}

	srv.log(ctx).Info("Clothing style deleted", slog.Any("style_id", id))

	return nil
}

// ReplaceClothingStyles clears the catalogue and inserts styles. Either all of it happens or none.
func (srv *catalogService) ReplaceClothingStyles(ctx context.Context, inputs []*usecase.ClothingStyleInput) (int, error) {
	for _, input := range inputs {
		if err := srv.validator.Validate(input); err != nil {
			return 0, err
		}
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		styleRepo := repoFactory.ClothingStyleRepo()

		removed, err := styleRepo.DeleteAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to clear clothing styles")
		}
		srv.log(ctx).Info("Cleared clothing styles", slog.Int64("removed", removed))

		for _, input := range inputs {
			if err := styleRepo.Create(ctx, newClothingStyle(input)); err != nil {
				return errors.Wrapf(err, "failed to create clothing style %q", input.Name)
			}
		}

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to replace clothing styles")
	}

	return len(inputs), nil
}

func (srv *catalogService) ListTailorProducts(ctx context.Context, tailorID uuid.UUID) ([]*entity.TailorProduct, error) {
	products, err := srv.repos.TailorProductRepo().ListByTailor(ctx, tailorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tailor products")
	}

	return products, nil
}

// CreateTailorProduct adds a product owned by tailorID.
func (srv *catalogService) CreateTailorProduct(ctx context.Context, tailorID uuid.UUID, input *usecase.TailorProductInput) (*entity.TailorProduct, error) {
	if err := srv.validator.Validate(input); err != nil {
		return nil, err
	}
	if tailorID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	category, _ := entity.ParseProductCategory(input.Category)
	product := &entity.TailorProduct{
		TailorID:          tailorID,
		Category:          category,
		ProductName:       strings.TrimSpace(input.ProductName),
		ProductImage:      strings.TrimSpace(input.ProductImage),
		Cost:              input.Cost,
		Description:       input.Description,
		MeasurementGuides: input.MeasurementGuides,
	}

	if err := srv.repos.TailorProductRepo().Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create tailor product", slog.Any("tailor_id", tailorID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create tailor product")
	}

	srv.log(ctx).Info("Tailor product created", slog.Any("tailor_id", tailorID), slog.Any("product_id", product.ID))

	return product, nil
}

func newClothingStyle(input *usecase.ClothingStyleInput) *entity.ClothingStyle {
	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	return &entity.ClothingStyle{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Cost:        input.Cost,
		Image:       strings.TrimSpace(input.Image),
		IsActive:    active,
	}
}

func mapStyleNotFound(err error, msg string) error {
	if errors.Is(err, repository.ErrClothingStyleNotFound) {
		return domainerrors.ErrClothingStyleNotFound
	}

	return errors.Wrap(err, msg)
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)

	return &v
}
