package postgres

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"edms/internal/domain"
	"edms/internal/port"
)

type auditLogRepo struct {
	db *sqlx.DB
}

// NewAuditLogRepo creates a new PostgreSQL-backed AuditLogRepository.
func NewAuditLogRepo(db *sqlx.DB) port.AuditLogRepository {
	return &auditLogRepo{db: db}
}

func (r *auditLogRepo) Create(ctx context.Context, entry *domain.AuditLogEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO audit_logs (id, user_id, action_type, message, performed_by, ip_address, timestamp, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.UserID, entry.ActionType, entry.Message,
		entry.PerformedBy, entry.IPAddress, entry.Timestamp, entry.Status)
	if err != nil {
		return fmt.Errorf("auditLogRepo.Create: %w", err)
	}
	return nil
}

func (r *auditLogRepo) List(ctx context.Context, cursor string, pageSize int, filter port.LogFilter) (*port.LogPage, error) {
	query := "SELECT * FROM audit_logs"
	var conds []string
	var args []interface{}

	if cursor != "" {
		ts, id, err := decodeLogCursor(cursor)
		if err != nil {
			return nil, domain.ErrValidation
		}
		args = append(args, ts, id)
		conds = append(conds, fmt.Sprintf("(timestamp, id) < ($%d, $%d)", len(args)-1, len(args)))
	}
	if filter.SearchTerm != "" {
		args = append(args, "%"+strings.ToLower(filter.SearchTerm)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(message ILIKE $%d OR performed_by ILIKE $%d OR ip_address ILIKE $%d)", n, n, n))
	}
	if filter.ActionType != "" {
		args = append(args, filter.ActionType)
		conds = append(conds, fmt.Sprintf("action_type = $%d", len(args)))
	}
	if filter.PerformedBy != "" {
		args = append(args, filter.PerformedBy)
		conds = append(conds, fmt.Sprintf("performed_by = $%d", len(args)))
	}
	if filter.FromDate != nil {
		args = append(args, *filter.FromDate)
		conds = append(conds, fmt.Sprintf("timestamp >= $%d", len(args)))
	}
	if filter.ToDate != nil {
		args = append(args, *filter.ToDate)
		conds = append(conds, fmt.Sprintf("timestamp < $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	// Fetch one extra row to decide HasMore without a COUNT.
	args = append(args, pageSize+1)
	query += fmt.Sprintf(" ORDER BY timestamp DESC, id DESC LIMIT $%d", len(args))

	var entries []domain.AuditLogEntry
	if err := r.db.SelectContext(ctx, &entries, query, args...); err != nil {
		return nil, fmt.Errorf("auditLogRepo.List: %w", err)
	}

	page := &port.LogPage{Logs: entries}
	if len(entries) > pageSize {
		page.Logs = entries[:pageSize]
		page.HasMore = true
	}
	if n := len(page.Logs); n > 0 && page.HasMore {
		last := page.Logs[n-1]
		page.NextCursor = encodeLogCursor(last.Timestamp, last.ID)
	}
	return page, nil
}

// Keyset cursors encode the last-seen (timestamp, id) pair so pages stay
// stable while new entries are inserted at the head of the log.

func encodeLogCursor(ts time.Time, id uuid.UUID) string {
	raw := fmt.Sprintf("%s|%s", ts.UTC().Format(time.RFC3339Nano), id)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func decodeLogCursor(cursor string) (time.Time, uuid.UUID, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("decoding cursor: %w", err)
	}
	parts := strings.SplitN(string(raw), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, uuid.Nil, fmt.Errorf("malformed cursor")
	}
	ts, err := time.Parse(time.RFC3339Nano, parts[0])
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("parsing cursor timestamp: %w", err)
	}
	id, err := uuid.Parse(parts[1])
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("parsing cursor id: %w", err)
	}
	return ts, id, nil
}
