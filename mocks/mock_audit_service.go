package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"edms/internal/domain"
	"edms/internal/port"
	"edms/internal/service"
)

// MockAuditService is a mock implementation of service.AuditService.
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, actor service.Actor, action domain.AuditAction, status domain.AuditStatus, message string) {
	m.Called(ctx, actor, action, status, message)
}

func (m *MockAuditService) List(ctx context.Context, cursor string, pageSize int, filter port.LogFilter) (*port.LogPage, error) {
	args := m.Called(ctx, cursor, pageSize, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*port.LogPage), args.Error(1)
}
