package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"edms/internal/domain"
	"edms/internal/port"
	"edms/internal/service"
	"edms/mocks"
)

func TestAuditService_Record_FillsDefaults(t *testing.T) {
	repo := new(mocks.MockAuditLogRepo)
	svc := service.NewAuditService(repo)

	userID := uuid.New()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *domain.AuditLogEntry) bool {
		return e.ActionType == domain.AuditUserLogin &&
			e.PerformedBy == "hradmin" &&
			e.IPAddress == "10.0.0.7" &&
			e.Status == domain.AuditSuccess &&
			e.UserID != nil && *e.UserID == userID
	})).Return(nil)

	svc.Record(context.Background(), service.Actor{
		UserID:   &userID,
		Username: "hradmin",
		IP:       "10.0.0.7",
	}, domain.AuditUserLogin, domain.AuditSuccess, "login ok")

	repo.AssertExpectations(t)
}

func TestAuditService_Record_AnonymousActor(t *testing.T) {
	repo := new(mocks.MockAuditLogRepo)
	svc := service.NewAuditService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *domain.AuditLogEntry) bool {
		return e.PerformedBy == "anonymous" && e.UserID == nil
	})).Return(nil)

	svc.Record(context.Background(), service.Actor{IP: "10.0.0.7"},
		domain.AuditUserLogin, domain.AuditFailure, "bad credentials")

	repo.AssertExpectations(t)
}

func TestAuditService_Record_SwallowsRepoFailure(t *testing.T) {
	repo := new(mocks.MockAuditLogRepo)
	svc := service.NewAuditService(repo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.AuditLogEntry")).
		Return(errors.New("db down"))

	// Must not panic and must not surface the error.
	svc.Record(context.Background(), service.Actor{Username: "hradmin"},
		domain.AuditDocumentUpload, domain.AuditSuccess, "uploaded")
}

func TestAuditService_List_ClampsPageSize(t *testing.T) {
	repo := new(mocks.MockAuditLogRepo)
	svc := service.NewAuditService(repo)

	repo.On("List", mock.Anything, "", 20, port.LogFilter{}).
		Return(&port.LogPage{Logs: []domain.AuditLogEntry{}}, nil)

	page, err := svc.List(context.Background(), "", 5000, port.LogFilter{})
	require.NoError(t, err)
	assert.False(t, page.HasMore)
	repo.AssertExpectations(t)
}

func TestAuditService_List_PassesCursorThrough(t *testing.T) {
	repo := new(mocks.MockAuditLogRepo)
	svc := service.NewAuditService(repo)

	filter := port.LogFilter{ActionType: domain.AuditDocumentUpload}
	repo.On("List", mock.Anything, "opaque-cursor", 50, filter).
		Return(&port.LogPage{HasMore: true, NextCursor: "next"}, nil)

	page, err := svc.List(context.Background(), "opaque-cursor", 50, filter)
	require.NoError(t, err)
	assert.True(t, page.HasMore)
	assert.Equal(t, "next", page.NextCursor)
}
