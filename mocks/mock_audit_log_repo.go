package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"edms/internal/domain"
	"edms/internal/port"
)

// MockAuditLogRepo is a mock implementation of port.AuditLogRepository.
type MockAuditLogRepo struct {
	mock.Mock
}

func (m *MockAuditLogRepo) Create(ctx context.Context, entry *domain.AuditLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditLogRepo) List(ctx context.Context, cursor string, pageSize int, filter port.LogFilter) (*port.LogPage, error) {
	args := m.Called(ctx, cursor, pageSize, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.LogPage), args.Error(1)
}
