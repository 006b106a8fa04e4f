package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"edms/internal/domain"
	"edms/internal/port"
	"edms/internal/service"
)

// MockEmployeeService is a mock implementation of service.EmployeeService.
type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) Create(ctx context.Context, input service.CreateEmployeeInput) (*domain.Employee, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) Get(ctx context.Context, id string) (*domain.EmployeeView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployeeView), args.Error(1)
}

func (m *MockEmployeeService) List(ctx context.Context, page, pageSize int) ([]domain.Employee, int, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Employee), args.Int(1), args.Error(2)
}

func (m *MockEmployeeService) Update(ctx context.Context, id string, input service.UpdateEmployeeInput) (*domain.Employee, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockEmployeeService) UpdateLocation(ctx context.Context, id string, location domain.FileLocation) error {
	args := m.Called(ctx, id, location)
	return args.Error(0)
}

func (m *MockEmployeeService) Search(ctx context.Context, filter port.EmployeeSearchFilter) ([]domain.EmployeeView, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EmployeeView), args.Error(1)
}
