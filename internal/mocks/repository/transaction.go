// Package repository provides testify mocks of the repository contracts.
package repository

import (
	"context"

	"sews/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a mock of repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

// NewMockTransactionManager creates a mock whose expectations are asserted on cleanup.
func NewMockTransactionManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if rf, ok := args.Get(0).(func(context.Context, func(repository.RepositoryFactory) error) error); ok {
		return rf(ctx, fn)
	}

	return args.Error(0)
}

// RunWith makes Execute invoke fn with factory and return its error, like a real transaction would.
func (m *MockTransactionManager) RunWith(factory repository.RepositoryFactory) *mock.Call {
	return m.On("Execute", mock.Anything, mock.Anything).
		Return(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

// MockRepositoryFactory is a mock of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

// NewMockRepositoryFactory creates a mock whose expectations are asserted on cleanup.
func NewMockRepositoryFactory(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRepositoryFactory {
	m := &MockRepositoryFactory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRepositoryFactory) CustomerRepo() repository.CustomerRepository {
	args := m.Called()

	return args.Get(0).(repository.CustomerRepository)
}

func (m *MockRepositoryFactory) TailorRepo() repository.TailorRepository {
	args := m.Called()

	return args.Get(0).(repository.TailorRepository)
}

func (m *MockRepositoryFactory) ClothingStyleRepo() repository.ClothingStyleRepository {
	args := m.Called()

	return args.Get(0).(repository.ClothingStyleRepository)
}

func (m *MockRepositoryFactory) TailorProductRepo() repository.TailorProductRepository {
	args := m.Called()

	return args.Get(0).(repository.TailorProductRepository)
}
