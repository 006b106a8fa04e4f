package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"edms/internal/domain"
	"edms/internal/handler"
)

func TestMapDomainError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{domain.ErrUserInactive, http.StatusForbidden, "USER_INACTIVE"},
		{domain.ErrDuplicateUsername, http.StatusConflict, "DUPLICATE_USERNAME"},
		{domain.ErrDuplicateEmployee, http.StatusConflict, "DUPLICATE_EMPLOYEE"},
		{domain.ErrDuplicateCategory, http.StatusConflict, "DUPLICATE_CATEGORY"},
		{domain.ErrConcurrentModification, http.StatusConflict, "CONCURRENT_MODIFICATION"},
		{domain.ErrInvalidTransition, http.StatusBadRequest, "INVALID_TRANSITION"},
		{domain.ErrValidation, http.StatusBadRequest, "VALIDATION_ERROR"},
		{domain.ErrUnsupportedFileType, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE"},
		{domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{domain.ErrStorage, http.StatusBadGateway, "STORAGE_ERROR"},
		{errors.New("anything else"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			status, code, _ := handler.MapDomainError(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.code, code)
		})
	}
}

func TestMapDomainError_UnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("documentRepo.Activate: %w", domain.ErrConcurrentModification)

	status, code, _ := handler.MapDomainError(wrapped)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONCURRENT_MODIFICATION", code)
}
