package domain

import (
	"time"

	"github.com/google/uuid"
)

// Employee represents a personnel record. The ID is the externally assigned
// personnel number, not a generated UUID; HR administration owns these rows
// and they are never hard-deleted.
type Employee struct {
	ID           string         `db:"id" json:"id"`
	Name         string         `db:"name" json:"name"`
	Department   string         `db:"department" json:"department"`
	Designation  string         `db:"designation" json:"designation"`
	Grade        string         `db:"grade" json:"grade"`
	JoinDate     time.Time      `db:"join_date" json:"join_date"`
	FileLocation FileLocation   `db:"file_location" json:"file_location"`
	Status       EmployeeStatus `db:"status" json:"status"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}

// Document is one uploaded file for an employee/category pair. Rows are
// append-only: a re-upload adds a new row and older rows stay Inactive.
// At most one row per (employee_id, category_code) carries StatusActive.
type Document struct {
	ID            uuid.UUID      `db:"id" json:"id"`
	EmployeeID    string         `db:"employee_id" json:"employee_id"`
	CategoryCode  string         `db:"category_code" json:"category_code"`
	CategoryLabel string         `db:"category_label" json:"category"`
	UploadedBy    uuid.UUID      `db:"uploaded_by" json:"uploaded_by"`
	UploadedAt    time.Time      `db:"uploaded_at" json:"uploaded_at"`
	FileSize      int64          `db:"file_size" json:"file_size"`
	ContentType   string         `db:"content_type" json:"content_type"`
	S3Bucket      string         `db:"s3_bucket" json:"-"`
	S3Key         string         `db:"s3_key" json:"-"`
	Status        DocumentStatus `db:"status" json:"status"`
}

// RequiredCategory marks that a document of a given category is expected for
// an employee, independent of whether anything has been uploaded yet.
// Removal is soft: the binding is deactivated, document rows are untouched.
type RequiredCategory struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	EmployeeID    string     `db:"employee_id" json:"employee_id"`
	CategoryCode  string     `db:"category_code" json:"category_code"`
	CategoryLabel string     `db:"category_label" json:"category_label"`
	IsActive      bool       `db:"is_active" json:"is_active"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	RemovedAt     *time.Time `db:"removed_at" json:"removed_at,omitempty"`
}

// RequiredCategoryView is a required-category binding joined with the
// computed document status for that category: Active when an Active document
// exists, Inactive when only Inactive documents exist, Pending when none.
type RequiredCategoryView struct {
	ID            uuid.UUID      `db:"id" json:"id"`
	EmployeeID    string         `db:"employee_id" json:"employee_id"`
	CategoryCode  string         `db:"category_code" json:"category_code"`
	CategoryLabel string         `db:"category_label" json:"category"`
	Status        CategoryStatus `db:"status" json:"status"`
	DocumentID    *uuid.UUID     `db:"document_id" json:"doc_id,omitempty"`
}

// User is an application operator (HR staff), not an employee.
type User struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Username     string     `db:"username" json:"username"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Phone        string     `db:"phone" json:"phone"`
	Role         UserRole   `db:"role" json:"role"`
	Status       UserStatus `db:"status" json:"status"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// AuditLogEntry is one append-only record of a state-changing (or audited
// read) action. Entries are never mutated or deleted.
type AuditLogEntry struct {
	ID          uuid.UUID   `db:"id" json:"id"`
	UserID      *uuid.UUID  `db:"user_id" json:"user_id,omitempty"`
	ActionType  AuditAction `db:"action_type" json:"actionType"`
	Message     string      `db:"message" json:"message"`
	PerformedBy string      `db:"performed_by" json:"performedBy"`
	IPAddress   string      `db:"ip_address" json:"ip_address"`
	Timestamp   time.Time   `db:"timestamp" json:"timestamp"`
	Status      AuditStatus `db:"status" json:"status"`
}

// DocumentView is a search result row: a document joined with its employee.
type DocumentView struct {
	Document
	EmployeeName string `db:"employee_name" json:"employee_name"`
	Department   string `db:"department" json:"department"`
}

// EmployeeView is an employee search result with the per-category computed
// statuses attached, so callers do not need a second round-trip.
type EmployeeView struct {
	Employee
	Categories []RequiredCategoryView `json:"documents"`
}

// DashboardStats aggregates the counts shown on the dashboard.
// PendingCount is the number of active required-category bindings with no
// uploaded document at all.
type DashboardStats struct {
	DocumentCount int        `db:"document_count" json:"documentCount"`
	EmployeeCount int        `db:"employee_count" json:"employeeCount"`
	ActiveCount   int        `db:"active_count" json:"activeCount"`
	InactiveCount int        `db:"inactive_count" json:"inactiveCount"`
	PendingCount  int        `db:"pending_count" json:"pendingCount"`
	RecentUploads []Document `json:"recentUploads"`
}
