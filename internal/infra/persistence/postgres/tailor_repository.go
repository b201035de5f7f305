package postgres

import (
	"context"
	"strings"

	"sews/internal/domain/entity"
	domainerrors "sews/internal/domain/errors"
	"sews/internal/domain/repository"
	"sews/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tailorRepository implements repository.TailorRepository using GORM.
type tailorRepository struct {
	db *gorm.DB
}

// NewTailorRepository is the constructor for tailorRepository.
func NewTailorRepository(db *gorm.DB) repository.TailorRepository {
	return &tailorRepository{db: db}
}

func (repo *tailorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tailor, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// FindByUsername expects an already normalized username and compares case-insensitively.
func (repo *tailorRepository) FindByUsername(ctx context.Context, username string) (*entity.Tailor, error) {
	return repo.findOne(ctx, "LOWER(username) = ?", strings.ToLower(username))
}

func (repo *tailorRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return repo.exists(ctx, "LOWER(username) = ?", strings.ToLower(username))
}

func (repo *tailorRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return repo.exists(ctx, "LOWER(email) = ?", entity.NormalizeEmail(email))
}

func (repo *tailorRepository) ExistsByNationalID(ctx context.Context, nationalID string) (bool, error) {
	return repo.exists(ctx, "national_id_number = ?", strings.TrimSpace(nationalID))
}

// Create inserts a new tailor. The date_of_registration column is create-only at the model level.
func (repo *tailorRepository) Create(ctx context.Context, tailor *entity.Tailor) error {
	tailorM := fromTailorDomain(tailor)

	if err := repo.db.WithContext(ctx).Create(tailorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrIdentityExists.WrapMessage("tailor identity already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required tailor information")
		}
		if isValueOutOfRange(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("tailor information exceeds the allowed length")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tailor")
	}

	tailor.ID = tailorM.ID

	return nil
}

func (repo *tailorRepository) List(ctx context.Context) ([]*entity.Tailor, error) {
	var tailorMs []*model.TailorModel
	if err := repo.db.WithContext(ctx).Order("username ASC").Find(&tailorMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tailors")
	}

	tailors := make([]*entity.Tailor, 0, len(tailorMs))
	for _, tailorM := range tailorMs {
		tailors = append(tailors, toTailorDomain(tailorM))
	}

	return tailors, nil
}

func (repo *tailorRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Tailor, error) {
	var tailorM model.TailorModel
	err := repo.db.WithContext(ctx).Where(query, args...).Take(&tailorM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTailorNotFound
		}

		return nil, errors.Wrap(err, "failed to find tailor")
	}

	return toTailorDomain(&tailorM), nil
}

func (repo *tailorRepository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&model.TailorModel{}).Where(query, args...).Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check tailor uniqueness")
	}

	return count > 0, nil
}

func toTailorDomain(data *model.TailorModel) *entity.Tailor {
	if data == nil {
		return nil
	}

	return &entity.Tailor{
		ID:                 data.ID,
		FullName:           data.FullName,
		Username:           data.Username,
		Email:              data.Email,
		NationalIDNumber:   data.NationalIDNumber,
		PhoneNumber:        data.PhoneNumber,
		Sex:                entity.Sex(data.Sex),
		AreaOfResidence:    data.AreaOfResidence,
		AreaOfWork:         data.AreaOfWork,
		DateOfRegistration: data.DateOfRegistration,
		PasswordHash:       data.PasswordHash,
		IsActive:           data.IsActive,
		IsStaff:            data.IsStaff,
	}
}

func fromTailorDomain(data *entity.Tailor) *model.TailorModel {
	if data == nil {
		return nil
	}

	return &model.TailorModel{
		ID:                 data.ID,
		FullName:           data.FullName,
		Username:           entity.NormalizeUsername(data.Username),
		Email:              entity.NormalizeEmail(data.Email),
		NationalIDNumber:   strings.TrimSpace(data.NationalIDNumber),
		PhoneNumber:        data.PhoneNumber,
		Sex:                string(data.Sex),
		AreaOfResidence:    data.AreaOfResidence,
		AreaOfWork:         data.AreaOfWork,
		DateOfRegistration: data.DateOfRegistration,
		PasswordHash:       data.PasswordHash,
		IsActive:           data.IsActive,
		IsStaff:            data.IsStaff,
	}
}
