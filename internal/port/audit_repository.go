package port

import (
	"context"
	"time"

	"edms/internal/domain"
)

// LogFilter narrows an audit log page. Zero values mean "no filter".
type LogFilter struct {
	SearchTerm  string
	ActionType  domain.AuditAction
	PerformedBy string
	FromDate    *time.Time
	ToDate      *time.Time
}

// LogPage is one page of audit entries. NextCursor is the opaque keyset
// cursor for the following page; empty when HasMore is false.
type LogPage struct {
	Logs       []domain.AuditLogEntry `json:"logs"`
	NextCursor string                 `json:"nextCursor,omitempty"`
	HasMore    bool                   `json:"hasMore"`
}

// AuditLogRepository is the append-only audit trail. List paginates by
// (timestamp DESC, id DESC) keyset so pages stay stable under concurrent
// inserts.
type AuditLogRepository interface {
	Create(ctx context.Context, entry *domain.AuditLogEntry) error
	List(ctx context.Context, cursor string, pageSize int, filter LogFilter) (*LogPage, error)
}
