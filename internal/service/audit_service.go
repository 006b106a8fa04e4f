package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"edms/internal/domain"
	"edms/internal/port"
)

// Actor identifies who performed an audited action and from where.
type Actor struct {
	UserID   *uuid.UUID
	Username string
	IP       string
}

// AuditService records and queries the append-only audit trail.
type AuditService interface {
	// Record writes one audit entry. A failed write is logged and swallowed;
	// auditing must never fail the action it describes.
	Record(ctx context.Context, actor Actor, action domain.AuditAction, status domain.AuditStatus, message string)
	List(ctx context.Context, cursor string, pageSize int, filter port.LogFilter) (*port.LogPage, error)
}

type auditService struct {
	repo port.AuditLogRepository
}

// NewAuditService creates a new AuditService implementation.
func NewAuditService(repo port.AuditLogRepository) AuditService {
	return &auditService{repo: repo}
}

func (s *auditService) Record(ctx context.Context, actor Actor, action domain.AuditAction, status domain.AuditStatus, message string) {
	entry := &domain.AuditLogEntry{
		UserID:      actor.UserID,
		ActionType:  action,
		Message:     message,
		PerformedBy: actor.Username,
		IPAddress:   actor.IP,
		Status:      status,
	}
	if entry.PerformedBy == "" {
		entry.PerformedBy = "anonymous"
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		log.Printf("audit: failed to record %s: %v", action, err)
	}
}

func (s *auditService) List(ctx context.Context, cursor string, pageSize int, filter port.LogFilter) (*port.LogPage, error) {
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return s.repo.List(ctx, cursor, pageSize, filter)
}
