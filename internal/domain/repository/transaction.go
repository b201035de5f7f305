package repository

import "context"

// TransactionManager runs a unit of work atomically. Use cases depend on it
// instead of on gorm.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise.
	// Repositories obtained from txRepoFactory are only valid inside fn.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories that share one connection handle.
type RepositoryFactory interface {
	CustomerRepo() CustomerRepository
	TailorRepo() TailorRepository
	ClothingStyleRepo() ClothingStyleRepository
	TailorProductRepo() TailorProductRepository
}
