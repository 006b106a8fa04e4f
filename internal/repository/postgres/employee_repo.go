package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"edms/internal/domain"
	"edms/internal/port"
)

type employeeRepo struct {
	db *sqlx.DB
}

// NewEmployeeRepo creates a new PostgreSQL-backed EmployeeRepository.
func NewEmployeeRepo(db *sqlx.DB) port.EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(ctx context.Context, emp *domain.Employee) error {
	now := time.Now().UTC()
	emp.CreatedAt = now
	emp.UpdatedAt = now
	if emp.Status == "" {
		emp.Status = domain.EmployeeActive
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO employees (id, name, department, designation, grade,
			join_date, file_location, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		emp.ID, emp.Name, emp.Department, emp.Designation, emp.Grade,
		emp.JoinDate, emp.FileLocation, emp.Status, emp.CreatedAt, emp.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateEmployee
		}
		return fmt.Errorf("employeeRepo.Create: %w", err)
	}
	return nil
}

func (r *employeeRepo) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	var emp domain.Employee
	err := r.db.GetContext(ctx, &emp, "SELECT * FROM employees WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("employeeRepo.GetByID: %w", err)
	}
	return &emp, nil
}

func (r *employeeRepo) List(ctx context.Context, offset, limit int) ([]domain.Employee, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM employees"); err != nil {
		return nil, 0, fmt.Errorf("employeeRepo.List count: %w", err)
	}

	var emps []domain.Employee
	err := r.db.SelectContext(ctx, &emps,
		"SELECT * FROM employees ORDER BY created_at DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("employeeRepo.List: %w", err)
	}
	return emps, total, nil
}

func (r *employeeRepo) Update(ctx context.Context, emp *domain.Employee) error {
	emp.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE employees SET name = $1, department = $2, designation = $3,
			grade = $4, join_date = $5, status = $6, updated_at = $7
		 WHERE id = $8`,
		emp.Name, emp.Department, emp.Designation, emp.Grade,
		emp.JoinDate, emp.Status, emp.UpdatedAt, emp.ID)
	if err != nil {
		return fmt.Errorf("employeeRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *employeeRepo) UpdateLocation(ctx context.Context, id string, location domain.FileLocation) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE employees SET file_location = $1, updated_at = NOW() WHERE id = $2",
		location, id)
	if err != nil {
		return fmt.Errorf("employeeRepo.UpdateLocation: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *employeeRepo) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM employees"); err != nil {
		return 0, fmt.Errorf("employeeRepo.Count: %w", err)
	}
	return total, nil
}

// categoryStatusExpr computes the per-category status for an employee inside
// a correlated subquery; it must mirror the CASE in requiredCategoryRepo.
const categoryStatusExpr = `CASE
	WHEN EXISTS (SELECT 1 FROM documents d WHERE d.employee_id = e.id
		AND d.category_code = rc.category_code AND d.status = 'Active') THEN 'Active'
	WHEN EXISTS (SELECT 1 FROM documents d WHERE d.employee_id = e.id
		AND d.category_code = rc.category_code) THEN 'Inactive'
	ELSE 'Pending'
END`

func (r *employeeRepo) Search(ctx context.Context, filter port.EmployeeSearchFilter) ([]domain.Employee, error) {
	query := "SELECT e.* FROM employees e"
	var conds []string
	var args []interface{}

	if filter.SearchTerm != "" {
		args = append(args, "%"+strings.ToLower(filter.SearchTerm)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(e.id ILIKE $%d OR e.name ILIKE $%d OR e.department ILIKE $%d)", n, n, n))
	}
	if filter.Department != "" {
		args = append(args, filter.Department)
		conds = append(conds, fmt.Sprintf("e.department = $%d", len(args)))
	}
	if filter.FileLocation != "" {
		args = append(args, filter.FileLocation)
		conds = append(conds, fmt.Sprintf("e.file_location = $%d", len(args)))
	}
	if filter.JoinFromDate != nil {
		args = append(args, *filter.JoinFromDate)
		conds = append(conds, fmt.Sprintf("e.join_date >= $%d", len(args)))
	}
	if filter.JoinToDate != nil {
		args = append(args, *filter.JoinToDate)
		conds = append(conds, fmt.Sprintf("e.join_date <= $%d", len(args)))
	}
	if filter.MissingDocuments {
		conds = append(conds, `EXISTS (
			SELECT 1 FROM required_categories rc
			WHERE rc.employee_id = e.id AND rc.is_active
			  AND NOT EXISTS (SELECT 1 FROM documents d
				WHERE d.employee_id = e.id AND d.category_code = rc.category_code))`)
	}
	for _, code := range filter.SelectedCategories {
		args = append(args, code)
		codeArg := len(args)
		wanted, ok := filter.CategoryStatus[code]
		if !ok || wanted == "" {
			conds = append(conds, fmt.Sprintf(`EXISTS (
				SELECT 1 FROM required_categories rc
				WHERE rc.employee_id = e.id AND rc.is_active AND rc.category_code = $%d)`, codeArg))
			continue
		}
		args = append(args, wanted)
		conds = append(conds, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM required_categories rc
			WHERE rc.employee_id = e.id AND rc.is_active AND rc.category_code = $%d
			  AND %s = $%d)`, codeArg, categoryStatusExpr, len(args)))
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY e.name ASC"

	var emps []domain.Employee
	if err := r.db.SelectContext(ctx, &emps, query, args...); err != nil {
		return nil, fmt.Errorf("employeeRepo.Search: %w", err)
	}
	return emps, nil
}
