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

type requiredCategoryRepo struct {
	db *sqlx.DB
}

// NewRequiredCategoryRepo creates a new PostgreSQL-backed RequiredCategoryRepository.
func NewRequiredCategoryRepo(db *sqlx.DB) port.RequiredCategoryRepository {
	return &requiredCategoryRepo{db: db}
}

func (r *requiredCategoryRepo) Add(ctx context.Context, rc *domain.RequiredCategory) error {
	if rc.ID == uuid.Nil {
		rc.ID = uuid.New()
	}
	rc.IsActive = true
	rc.CreatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO required_categories (id, employee_id, category_code, category_label, is_active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rc.ID, rc.EmployeeID, rc.CategoryCode, rc.CategoryLabel, rc.IsActive, rc.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateCategory
		}
		if strings.Contains(err.Error(), "foreign key") {
			return domain.ErrNotFound
		}
		return fmt.Errorf("requiredCategoryRepo.Add: %w", err)
	}
	return nil
}

func (r *requiredCategoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RequiredCategory, error) {
	var rc domain.RequiredCategory
	err := r.db.GetContext(ctx, &rc, "SELECT * FROM required_categories WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("requiredCategoryRepo.GetByID: %w", err)
	}
	return &rc, nil
}

func (r *requiredCategoryRepo) Remove(ctx context.Context, employeeID, categoryCode string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE required_categories SET is_active = false, removed_at = NOW()
		 WHERE employee_id = $1 AND category_code = $2 AND is_active`,
		employeeID, categoryCode)
	if err != nil {
		return fmt.Errorf("requiredCategoryRepo.Remove: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		// Removing an already-removed binding is a no-op; a binding that
		// never existed is an error.
		var exists bool
		err := r.db.GetContext(ctx, &exists,
			`SELECT EXISTS (SELECT 1 FROM required_categories
			 WHERE employee_id = $1 AND category_code = $2)`,
			employeeID, categoryCode)
		if err != nil {
			return fmt.Errorf("requiredCategoryRepo.Remove lookup: %w", err)
		}
		if !exists {
			return domain.ErrNotFound
		}
	}
	return nil
}

func (r *requiredCategoryRepo) ListRequired(ctx context.Context, employeeID string) ([]domain.RequiredCategoryView, error) {
	var views []domain.RequiredCategoryView
	err := r.db.SelectContext(ctx, &views,
		`SELECT rc.id, rc.employee_id, rc.category_code, rc.category_label,
			CASE
				WHEN ad.id IS NOT NULL THEN 'Active'
				WHEN EXISTS (SELECT 1 FROM documents d
					WHERE d.employee_id = rc.employee_id
					  AND d.category_code = rc.category_code) THEN 'Inactive'
				ELSE 'Pending'
			END AS status,
			ad.id AS document_id
		 FROM required_categories rc
		 LEFT JOIN documents ad ON ad.employee_id = rc.employee_id
			AND ad.category_code = rc.category_code AND ad.status = 'Active'
		 WHERE rc.employee_id = $1 AND rc.is_active
		 ORDER BY rc.created_at ASC`,
		employeeID)
	if err != nil {
		return nil, fmt.Errorf("requiredCategoryRepo.ListRequired: %w", err)
	}
	return views, nil
}
