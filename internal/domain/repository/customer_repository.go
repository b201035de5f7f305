// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"sews/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCustomerNotFound is returned when no customer matches a lookup.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository is the credential store for customer accounts.
type CustomerRepository interface {
	// FindByID retrieves a single customer by id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindByEmail matches the email case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)

	// ExistsByEmail reports whether an account already uses the email, ignoring case.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create persists a new customer and fills in generated fields.
	Create(ctx context.Context, customer *entity.Customer) error

	// List returns every customer ordered by first name.
	List(ctx context.Context) ([]*entity.Customer, error)
}
