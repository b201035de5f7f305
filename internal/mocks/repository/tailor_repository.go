package repository

import (
	"context"

	"sews/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTailorRepository is a mock of repository.TailorRepository.
type MockTailorRepository struct {
	mock.Mock
}

// NewMockTailorRepository creates a mock whose expectations are asserted on cleanup.
func NewMockTailorRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTailorRepository {
	m := &MockTailorRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTailorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tailor, error) {
	args := m.Called(ctx, id)

	return tailorOrNil(args.Get(0)), args.Error(1)
}

func (m *MockTailorRepository) FindByUsername(ctx context.Context, username string) (*entity.Tailor, error) {
	args := m.Called(ctx, username)

	return tailorOrNil(args.Get(0)), args.Error(1)
}

func (m *MockTailorRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)

	return args.Bool(0), args.Error(1)
}

func (m *MockTailorRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)

	return args.Bool(0), args.Error(1)
}

func (m *MockTailorRepository) ExistsByNationalID(ctx context.Context, nationalID string) (bool, error) {
	args := m.Called(ctx, nationalID)

	return args.Bool(0), args.Error(1)
}

func (m *MockTailorRepository) Create(ctx context.Context, tailor *entity.Tailor) error {
	args := m.Called(ctx, tailor)

	return args.Error(0)
}

func (m *MockTailorRepository) List(ctx context.Context) ([]*entity.Tailor, error) {
	args := m.Called(ctx)
	tailors, _ := args.Get(0).([]*entity.Tailor)

	return tailors, args.Error(1)
}

func tailorOrNil(v any) *entity.Tailor {
	t, _ := v.(*entity.Tailor)

	return t
}
