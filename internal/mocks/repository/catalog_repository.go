package repository

import (
	"context"

	"sews/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockClothingStyleRepository is a mock of repository.ClothingStyleRepository.
type MockClothingStyleRepository struct {
	mock.Mock
}

// NewMockClothingStyleRepository creates a mock whose expectations are asserted on cleanup.
func NewMockClothingStyleRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClothingStyleRepository {
	m := &MockClothingStyleRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockClothingStyleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ClothingStyle, error) {
	args := m.Called(ctx, id)
	style, _ := args.Get(0).(*entity.ClothingStyle)

	return style, args.Error(1)
}

func (m *MockClothingStyleRepository) List(ctx context.Context, activeOnly bool) ([]*entity.ClothingStyle, error) {
	args := m.Called(ctx, activeOnly)
	styles, _ := args.Get(0).([]*entity.ClothingStyle)

	return styles, args.Error(1)
}

func (m *MockClothingStyleRepository) Create(ctx context.Context, style *entity.ClothingStyle) error {
	args := m.Called(ctx, style)

	return args.Error(0)
}

func (m *MockClothingStyleRepository) Update(ctx context.Context, style *entity.ClothingStyle) error {
	args := m.Called(ctx, style)

	return args.Error(0)
}

func (m *MockClothingStyleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *MockClothingStyleRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	removed, _ := args.Get(0).(int64)

	return removed, args.Error(1)
}

// MockTailorProductRepository is a mock of repository.TailorProductRepository.
type MockTailorProductRepository struct {
	mock.Mock
}

// NewMockTailorProductRepository creates a mock whose expectations are asserted on cleanup.
func NewMockTailorProductRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTailorProductRepository {
	m := &MockTailorProductRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTailorProductRepository) ListByTailor(ctx context.Context, tailorID uuid.UUID) ([]*entity.TailorProduct, error) {
	args := m.Called(ctx, tailorID)
	products, _ := args.Get(0).([]*entity.TailorProduct)

	return products, args.Error(1)
}

func (m *MockTailorProductRepository) Create(ctx context.Context, product *entity.TailorProduct) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}
