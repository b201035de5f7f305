// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// customerRepository implements repository.CustomerRepository using GORM.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// FindByID retrieves a single customer by id.
func (repo *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&customerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by id")
	}

	return toCustomerDomain(&customerM), nil
}

// FindByEmail compares lowercased emails so legacy mixed-case rows still match.
func (repo *customerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	var customerM model.CustomerModel
	err := repo.db.WithContext(ctx).
		Where("LOWER(email) = ?", entity.NormalizeEmail(email)).
		Take(&customerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by email")
	}

	return toCustomerDomain(&customerM), nil
}

// ExistsByEmail reports whether the email is taken, ignoring case.
func (repo *customerRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("LOWER(email) = ?", entity.NormalizeEmail(email)).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check customer email")
	}

	return count > 0, nil
}

// Create inserts a new customer and copies generated fields back onto the entity.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrIdentityExists.WrapMessage("customer email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required customer information")
		}
		if isValueOutOfRange(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("customer information exceeds the allowed length")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	customer.ID = customerM.ID
	customer.DateJoined = customerM.DateJoined

	return nil
}

// List returns every customer ordered by first name.
func (repo *customerRepository) List(ctx context.Context) ([]*entity.Customer, error) {
	var customerMs []*model.CustomerModel
	if err := repo.db.WithContext(ctx).Order("first_name ASC").Order("id ASC").Find(&customerMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	customers := make([]*entity.Customer, 0, len(customerMs))
	for _, customerM := range customerMs {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers, nil
}

func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		IsActive:     data.IsActive,
		IsStaff:      data.IsStaff,
		IsSuperuser:  data.IsSuperuser,
		DateJoined:   data.DateJoined,
	}
}

func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        entity.NormalizeEmail(data.Email),
		PasswordHash: data.PasswordHash,
		IsActive:     data.IsActive,
		IsStaff:      data.IsStaff,
		IsSuperuser:  data.IsSuperuser,
		DateJoined:   data.DateJoined,
	}
}
