package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"edms/internal/domain"
	"edms/internal/port"
)

type documentRepo struct {
	db *sqlx.DB
}

// NewDocumentRepo creates a new PostgreSQL-backed DocumentRepository.
func NewDocumentRepo(db *sqlx.DB) port.DocumentRepository {
	return &documentRepo{db: db}
}

func (r *documentRepo) Create(ctx context.Context, doc *domain.Document) error {
	if doc.UploadedAt.IsZero() {
		doc.UploadedAt = time.Now().UTC()
	}
	doc.Status = domain.DocumentInactive

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("documentRepo.Create begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO documents (id, employee_id, category_code, category_label,
			uploaded_by, uploaded_at, file_size, content_type, s3_bucket, s3_key, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		doc.ID, doc.EmployeeID, doc.CategoryCode, doc.CategoryLabel,
		doc.UploadedBy, doc.UploadedAt, doc.FileSize, doc.ContentType,
		doc.S3Bucket, doc.S3Key, doc.Status)
	if err != nil {
		if strings.Contains(err.Error(), "foreign key") {
			return domain.ErrNotFound
		}
		return fmt.Errorf("documentRepo.Create: %w", err)
	}

	// First upload into a partition seeds its version counter.
	_, err = tx.ExecContext(ctx,
		`INSERT INTO document_partitions (employee_id, category_code, version)
		 VALUES ($1, $2, 0)
		 ON CONFLICT (employee_id, category_code) DO NOTHING`,
		doc.EmployeeID, doc.CategoryCode)
	if err != nil {
		return fmt.Errorf("documentRepo.Create partition: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("documentRepo.Create commit: %w", err)
	}
	return nil
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	var doc domain.Document
	err := r.db.GetContext(ctx, &doc, "SELECT * FROM documents WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("documentRepo.GetByID: %w", err)
	}
	return &doc, nil
}

func (r *documentRepo) ListByEmployee(ctx context.Context, employeeID string) ([]domain.Document, error) {
	var docs []domain.Document
	err := r.db.SelectContext(ctx, &docs,
		"SELECT * FROM documents WHERE employee_id = $1 ORDER BY uploaded_at DESC",
		employeeID)
	if err != nil {
		return nil, fmt.Errorf("documentRepo.ListByEmployee: %w", err)
	}
	return docs, nil
}

func (r *documentRepo) ListByEmployeeAndCategory(ctx context.Context, employeeID, categoryCode string, status *domain.DocumentStatus) ([]domain.Document, error) {
	query := `SELECT * FROM documents WHERE employee_id = $1 AND category_code = $2`
	args := []interface{}{employeeID, categoryCode}
	if status != nil {
		query += " AND status = $3"
		args = append(args, *status)
	}
	query += " ORDER BY uploaded_at DESC"

	var docs []domain.Document
	if err := r.db.SelectContext(ctx, &docs, query, args...); err != nil {
		return nil, fmt.Errorf("documentRepo.ListByEmployeeAndCategory: %w", err)
	}
	return docs, nil
}

func (r *documentRepo) PartitionVersion(ctx context.Context, employeeID, categoryCode string) (int64, error) {
	var version int64
	err := r.db.GetContext(ctx, &version,
		"SELECT version FROM document_partitions WHERE employee_id = $1 AND category_code = $2",
		employeeID, categoryCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("documentRepo.PartitionVersion: %w", err)
	}
	return version, nil
}

func (r *documentRepo) Activate(ctx context.Context, employeeID, categoryCode string, docID uuid.UUID, expectedVersion int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("documentRepo.Activate begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := casPartitionVersion(ctx, tx, employeeID, categoryCode, expectedVersion); err != nil {
		return err
	}

	// Demote any other Active document in the partition before promoting
	// the target, all inside the same transaction.
	_, err = tx.ExecContext(ctx,
		`UPDATE documents SET status = 'Inactive'
		 WHERE employee_id = $1 AND category_code = $2 AND id <> $3 AND status = 'Active'`,
		employeeID, categoryCode, docID)
	if err != nil {
		return fmt.Errorf("documentRepo.Activate demote: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE documents SET status = 'Active'
		 WHERE id = $1 AND employee_id = $2 AND category_code = $3`,
		docID, employeeID, categoryCode)
	if err != nil {
		return fmt.Errorf("documentRepo.Activate promote: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("documentRepo.Activate commit: %w", err)
	}
	return nil
}

func (r *documentRepo) Deactivate(ctx context.Context, employeeID, categoryCode string, docID uuid.UUID, expectedVersion int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("documentRepo.Deactivate begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := casPartitionVersion(ctx, tx, employeeID, categoryCode, expectedVersion); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE documents SET status = 'Inactive'
		 WHERE id = $1 AND employee_id = $2 AND category_code = $3 AND status = 'Active'`,
		docID, employeeID, categoryCode)
	if err != nil {
		return fmt.Errorf("documentRepo.Deactivate: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		var exists bool
		if err := tx.GetContext(ctx, &exists,
			"SELECT EXISTS (SELECT 1 FROM documents WHERE id = $1)", docID); err != nil {
			return fmt.Errorf("documentRepo.Deactivate lookup: %w", err)
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrInvalidTransition
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("documentRepo.Deactivate commit: %w", err)
	}
	return nil
}

// casPartitionVersion bumps the partition version only if it still equals
// expectedVersion. The loser of a concurrent transition sees zero rows and
// backs out with ErrConcurrentModification.
func casPartitionVersion(ctx context.Context, tx *sqlx.Tx, employeeID, categoryCode string, expectedVersion int64) error {
	result, err := tx.ExecContext(ctx,
		`UPDATE document_partitions SET version = version + 1
		 WHERE employee_id = $1 AND category_code = $2 AND version = $3`,
		employeeID, categoryCode, expectedVersion)
	if err != nil {
		return fmt.Errorf("documentRepo cas: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		var exists bool
		if err := tx.GetContext(ctx, &exists,
			`SELECT EXISTS (SELECT 1 FROM document_partitions
			 WHERE employee_id = $1 AND category_code = $2)`,
			employeeID, categoryCode); err != nil {
			return fmt.Errorf("documentRepo cas lookup: %w", err)
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrConcurrentModification
	}
	return nil
}

func (r *documentRepo) Search(ctx context.Context, filter port.DocumentSearchFilter) ([]domain.DocumentView, error) {
	query := `SELECT d.*, e.name AS employee_name, e.department
		FROM documents d
		INNER JOIN employees e ON e.id = d.employee_id`
	var conds []string
	var args []interface{}

	if filter.SearchTerm != "" {
		args = append(args, "%"+strings.ToLower(filter.SearchTerm)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			`(d.id::text ILIKE $%d OR d.category_code ILIKE $%d OR d.category_label ILIKE $%d
			  OR e.name ILIKE $%d OR e.id ILIKE $%d)`, n, n, n, n, n))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("d.category_code = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("d.status = $%d", len(args)))
	}
	if filter.FromDate != nil {
		args = append(args, *filter.FromDate)
		conds = append(conds, fmt.Sprintf("d.uploaded_at >= $%d", len(args)))
	}
	if filter.ToDate != nil {
		args = append(args, *filter.ToDate)
		conds = append(conds, fmt.Sprintf("d.uploaded_at < $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY d.uploaded_at DESC"

	var views []domain.DocumentView
	if err := r.db.SelectContext(ctx, &views, query, args...); err != nil {
		return nil, fmt.Errorf("documentRepo.Search: %w", err)
	}
	return views, nil
}
