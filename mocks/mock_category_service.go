package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"edms/internal/domain"
	"edms/internal/service"
)

// MockCategoryService is a mock implementation of service.CategoryService.
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) Add(ctx context.Context, input service.AddCategoryInput) (*domain.RequiredCategory, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RequiredCategory), args.Error(1)
}

func (m *MockCategoryService) Remove(ctx context.Context, employeeID, categoryCode string) error {
	args := m.Called(ctx, employeeID, categoryCode)
	return args.Error(0)
}

func (m *MockCategoryService) RemoveByID(ctx context.Context, id uuid.UUID) (*domain.RequiredCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RequiredCategory), args.Error(1)
}

func (m *MockCategoryService) ListRequired(ctx context.Context, employeeID string) ([]domain.RequiredCategoryView, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RequiredCategoryView), args.Error(1)
}
