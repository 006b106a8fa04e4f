package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"edms/internal/domain"
	"edms/internal/port"
)

// MockDocumentRepo is a mock implementation of port.DocumentRepository.
type MockDocumentRepo struct {
	mock.Mock
}

func (m *MockDocumentRepo) Create(ctx context.Context, doc *domain.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentRepo) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Document, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockDocumentRepo) ListByEmployeeAndCategory(ctx context.Context, employeeID, categoryCode string, status *domain.DocumentStatus) ([]domain.Document, error) {
	args := m.Called(ctx, employeeID, categoryCode, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

func (m *MockDocumentRepo) PartitionVersion(ctx context.Context, employeeID, categoryCode string) (int64, error) {
	args := m.Called(ctx, employeeID, categoryCode)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDocumentRepo) Activate(ctx context.Context, employeeID, categoryCode string, docID uuid.UUID, expectedVersion int64) error {
	args := m.Called(ctx, employeeID, categoryCode, docID, expectedVersion)
	return args.Error(0)
}

func (m *MockDocumentRepo) Deactivate(ctx context.Context, employeeID, categoryCode string, docID uuid.UUID, expectedVersion int64) error {
	args := m.Called(ctx, employeeID, categoryCode, docID, expectedVersion)
	return args.Error(0)
}

func (m *MockDocumentRepo) Search(ctx context.Context, filter port.DocumentSearchFilter) ([]domain.DocumentView, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentView), args.Error(1)
}
