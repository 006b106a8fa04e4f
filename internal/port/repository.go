package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"edms/internal/domain"
)

// EmployeeSearchFilter holds the conjunctive employee search criteria.
// Zero values mean "no filter". CategoryStatus maps a category code to the
// computed status it must have; MissingDocuments keeps only employees with
// at least one Pending required category.
type EmployeeSearchFilter struct {
	SearchTerm         string
	Department         string
	FileLocation       string
	MissingDocuments   bool
	SelectedCategories []string
	CategoryStatus     map[string]domain.CategoryStatus
	JoinFromDate       *time.Time
	JoinToDate         *time.Time
}

// EmployeeRepository defines the contract for employee persistence.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context, offset, limit int) ([]domain.Employee, int, error)
	Update(ctx context.Context, emp *domain.Employee) error
	// UpdateLocation changes the physical file storage location on the
	// employee record.
	UpdateLocation(ctx context.Context, id string, location domain.FileLocation) error
	Search(ctx context.Context, filter EmployeeSearchFilter) ([]domain.Employee, error)
	Count(ctx context.Context) (int, error)
}

// UserRepository defines the contract for operator account persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.UserStatus) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RequiredCategoryRepository tracks which document categories are expected
// per employee, independent of uploaded content.
type RequiredCategoryRepository interface {
	// Add creates an active binding. A second active binding for the same
	// (employee, category) pair fails with domain.ErrDuplicateCategory.
	Add(ctx context.Context, rc *domain.RequiredCategory) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RequiredCategory, error)
	// Remove soft-deletes the binding. Removing an already-removed binding
	// is a no-op; removing a binding that never existed fails with
	// domain.ErrNotFound. Document rows are never touched.
	Remove(ctx context.Context, employeeID, categoryCode string) error
	// ListRequired returns the active bindings for an employee with the
	// computed per-category status (Active/Inactive/Pending).
	ListRequired(ctx context.Context, employeeID string) ([]domain.RequiredCategoryView, error)
}
