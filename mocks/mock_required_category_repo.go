package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"edms/internal/domain"
)

// MockRequiredCategoryRepo is a mock implementation of port.RequiredCategoryRepository.
type MockRequiredCategoryRepo struct {
	mock.Mock
}

func (m *MockRequiredCategoryRepo) Add(ctx context.Context, rc *domain.RequiredCategory) error {
	args := m.Called(ctx, rc)
	return args.Error(0)
}

func (m *MockRequiredCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RequiredCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RequiredCategory), args.Error(1)
}

func (m *MockRequiredCategoryRepo) Remove(ctx context.Context, employeeID, categoryCode string) error {
	args := m.Called(ctx, employeeID, categoryCode)
	return args.Error(0)
}

func (m *MockRequiredCategoryRepo) ListRequired(ctx context.Context, employeeID string) ([]domain.RequiredCategoryView, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RequiredCategoryView), args.Error(1)
}
