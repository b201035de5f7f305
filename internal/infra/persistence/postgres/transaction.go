package postgres

import (
	"context"

	"sews/internal/domain/repository"
	"sews/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one connection handle,
// either an open transaction or the resolver-routed pool.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

// NewRepositoryFactory returns repositories outside any transaction.
// Their reads go through dbresolver and may be served by a replica.
func NewRepositoryFactory(db *gorm.DB) repository.RepositoryFactory {
	return &gormRepositoryFactory{tx: db}
}

func (f *gormRepositoryFactory) CustomerRepo() repository.CustomerRepository {
	return NewCustomerRepository(f.tx)
}

func (f *gormRepositoryFactory) TailorRepo() repository.TailorRepository {
	return NewTailorRepository(f.tx)
}

func (f *gormRepositoryFactory) ClothingStyleRepo() repository.ClothingStyleRepository {
	return NewClothingStyleRepository(f.tx)
}

func (f *gormRepositoryFactory) TailorProductRepo() repository.TailorProductRepository {
	return NewTailorProductRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside a single transaction on the primary.
// A returned error or a panic rolls back; otherwise the transaction commits.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
