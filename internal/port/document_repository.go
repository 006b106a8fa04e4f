package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"edms/internal/domain"
)

// DocumentSearchFilter holds the conjunctive document search criteria.
// SearchTerm matches document id, category code/label, employee name and
// employee id, case-insensitive.
type DocumentSearchFilter struct {
	SearchTerm string
	Category   string
	Status     domain.DocumentStatus
	FromDate   *time.Time
	ToDate     *time.Time
}

// DocumentRepository is the durable store for document rows and the home of
// the partition-level concurrency guard. Status flips MUST go through
// Activate/Deactivate; nothing else may write the status column.
type DocumentRepository interface {
	// Create inserts the row with status Inactive and ensures the partition
	// row for (employee_id, category_code) exists, in one transaction.
	// A missing employee fails with domain.ErrNotFound.
	Create(ctx context.Context, doc *domain.Document) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.Document, error)
	ListByEmployeeAndCategory(ctx context.Context, employeeID, categoryCode string, status *domain.DocumentStatus) ([]domain.Document, error)

	// PartitionVersion returns the current optimistic-concurrency counter
	// for the partition, or domain.ErrNotFound if no document was ever
	// uploaded for it.
	PartitionVersion(ctx context.Context, employeeID, categoryCode string) (int64, error)

	// Activate atomically makes docID the only Active document of its
	// partition: the partition version is compare-and-swapped against
	// expectedVersion (a mismatch fails with
	// domain.ErrConcurrentModification and changes nothing), every other
	// document in the partition is set Inactive and the target Active.
	Activate(ctx context.Context, employeeID, categoryCode string, docID uuid.UUID, expectedVersion int64) error

	// Deactivate sets an Active document back to Inactive under the same
	// CAS guard. A target that is not currently Active fails with
	// domain.ErrInvalidTransition.
	Deactivate(ctx context.Context, employeeID, categoryCode string, docID uuid.UUID, expectedVersion int64) error

	Search(ctx context.Context, filter DocumentSearchFilter) ([]domain.DocumentView, error)
}
