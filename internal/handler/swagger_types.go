package handler

import (
	"time"

	"edms/internal/domain"
	"edms/internal/service"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// LoginRequest represents the login request body.
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"hr.admin"`
	Password string `json:"password" binding:"required" example:"securepassword123"`
}

// RefreshRequest represents the token refresh request body.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// StatusRequest represents a user status change request body.
type StatusRequest struct {
	Status domain.UserStatus `json:"status" binding:"required" example:"Inactive"`
}

// PasswordRequest represents a password reset request body.
type PasswordRequest struct {
	Password string `json:"password" binding:"required" example:"newsecurepassword"`
}

// LocationRequest represents a file location change request body.
type LocationRequest struct {
	FileLocation domain.FileLocation `json:"file_location" binding:"required" example:"Audit Room"`
}

// CategoryRequest represents a required-category request body.
type CategoryRequest struct {
	Category  string `json:"category" binding:"required" example:"JOR"`
	OtherType string `json:"other_type" example:"Leave Sanction Order"`
}

// StatusChangeRequest represents a document status change request body.
// An empty body toggles the current status.
type StatusChangeRequest struct {
	Status     domain.DocumentStatus `json:"status" example:"Active"`
	Reactivate bool                  `json:"reactivate" example:"false"`
}

// --- Response Types ---

// LoginResponse represents the login response payload.
type LoginResponse struct {
	Tokens service.TokenPair `json:"tokens"`
	User   domain.User       `json:"user"`
}

// HealthResponse represents the health probe response.
type HealthResponse struct {
	Status  string `json:"status" example:"ready"`
	Service string `json:"service,omitempty" example:"edms"`
	Reason  string `json:"reason,omitempty" example:"database unreachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"operation completed successfully"`
}

// AuditLogPage represents one page of the audit trail.
type AuditLogPage struct {
	Logs       []domain.AuditLogEntry `json:"logs"`
	NextCursor string                 `json:"nextCursor,omitempty" example:"MjAyNS0wMS0xNVQxMDozMDowMFp8..."`
	HasMore    bool                   `json:"hasMore" example:"true"`
}

// TokenResponse represents the authentication token response.
type TokenResponse struct {
	AccessToken  string    `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string    `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt    time.Time `json:"expires_at" example:"2025-01-15T10:30:00Z"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
