package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"edms/internal/domain"
	"edms/internal/port"
)

// MockEmployeeRepo is a mock implementation of port.EmployeeRepository.
type MockEmployeeRepo struct {
	mock.Mock
}

func (m *MockEmployeeRepo) Create(ctx context.Context, emp *domain.Employee) error {
	args := m.Called(ctx, emp)
	return args.Error(0)
}

func (m *MockEmployeeRepo) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepo) List(ctx context.Context, offset, limit int) ([]domain.Employee, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Employee), args.Int(1), args.Error(2)
}

func (m *MockEmployeeRepo) Update(ctx context.Context, emp *domain.Employee) error {
	args := m.Called(ctx, emp)
	return args.Error(0)
}

func (m *MockEmployeeRepo) UpdateLocation(ctx context.Context, id string, location domain.FileLocation) error {
	args := m.Called(ctx, id, location)
	return args.Error(0)
}

func (m *MockEmployeeRepo) Search(ctx context.Context, filter port.EmployeeSearchFilter) ([]domain.Employee, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockEmployeeRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}
