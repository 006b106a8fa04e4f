package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"edms/internal/domain"
	"edms/internal/handler"
	"edms/internal/port"
	"edms/internal/service"
	"edms/mocks"
)

func newDocumentHandler() (*handler.DocumentHandler, *mocks.MockDocumentService, *mocks.MockAuditService) {
	docSvc := new(mocks.MockDocumentService)
	auditSvc := permissiveAuditService()
	h := handler.NewDocumentHandler(docSvc, auditSvc)
	return h, docSvc, auditSvc
}

func multipartUpload(t *testing.T, fields map[string]string, fileName string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileName != "" {
		part, err := mw.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4 test"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

// --- Upload ---

func TestDocumentHandler_Upload_Success(t *testing.T) {
	h, docSvc, auditSvc := newDocumentHandler()

	userID := uuid.New()
	created := &domain.Document{
		ID:           uuid.New(),
		EmployeeID:   "100234",
		CategoryCode: "OFD",
		Status:       domain.DocumentInactive,
	}
	docSvc.On("Upload", mock.Anything, mock.MatchedBy(func(in service.UploadDocumentInput) bool {
		return in.EmployeeID == "100234" && in.CategoryCode == "OFD" && in.UploadedBy == userID
	})).Return(created, nil)

	body, contentType := multipartUpload(t, map[string]string{
		"employee_id": "100234",
		"category":    "OFD",
	}, "offer.pdf")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/documents", body)
	c.Request.Header.Set("Content-Type", contentType)
	setAuthContext(c, userID, "hradmin", "admin")

	h.Upload(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	auditSvc.AssertCalled(t, "Record", mock.Anything, mock.Anything,
		domain.AuditDocumentUpload, domain.AuditSuccess, mock.Anything)
	docSvc.AssertExpectations(t)
}

func TestDocumentHandler_Upload_MissingCategory(t *testing.T) {
	h, _, _ := newDocumentHandler()

	body, contentType := multipartUpload(t, map[string]string{"employee_id": "100234"}, "offer.pdf")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/documents", body)
	c.Request.Header.Set("Content-Type", contentType)
	setAuthContext(c, uuid.New(), "hradmin", "admin")

	h.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDocumentHandler_Upload_MissingFile(t *testing.T) {
	h, _, _ := newDocumentHandler()

	body, contentType := multipartUpload(t, map[string]string{
		"employee_id": "100234",
		"category":    "OFD",
	}, "")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/documents", body)
	c.Request.Header.Set("Content-Type", contentType)
	setAuthContext(c, uuid.New(), "hradmin", "admin")

	h.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDocumentHandler_Upload_FileTooLarge(t *testing.T) {
	h, docSvc, auditSvc := newDocumentHandler()

	docSvc.On("Upload", mock.Anything, mock.AnythingOfType("service.UploadDocumentInput")).
		Return(nil, domain.ErrFileTooLarge)

	body, contentType := multipartUpload(t, map[string]string{
		"employee_id": "100234",
		"category":    "OFD",
	}, "huge.pdf")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/documents", body)
	c.Request.Header.Set("Content-Type", contentType)
	setAuthContext(c, uuid.New(), "hradmin", "admin")

	h.Upload(c)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	auditSvc.AssertCalled(t, "Record", mock.Anything, mock.Anything,
		domain.AuditDocumentUpload, domain.AuditFailure, mock.Anything)
}

// --- SetStatus ---

func TestDocumentHandler_SetStatus_Activate(t *testing.T) {
	h, docSvc, _ := newDocumentHandler()

	docID := uuid.New()
	docSvc.On("SetStatus", mock.Anything, docID, domain.DocumentActive).
		Return(&domain.Document{ID: docID, Status: domain.DocumentActive}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	postJSON(c, "/api/v1/documents/"+docID.String()+"/status", gin.H{"status": "Active"})
	c.Params = gin.Params{{Key: "id", Value: docID.String()}}
	setAuthContext(c, uuid.New(), "hradmin", "admin")

	h.SetStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	docSvc.AssertExpectations(t)
}

func TestDocumentHandler_SetStatus_EmptyBodyToggles(t *testing.T) {
	h, docSvc, _ := newDocumentHandler()

	docID := uuid.New()
	docSvc.On("Toggle", mock.Anything, docID).
		Return(&domain.Document{ID: docID, Status: domain.DocumentActive}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/documents/"+docID.String()+"/status", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: docID.String()}}
	setAuthContext(c, uuid.New(), "hradmin", "admin")

	h.SetStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	docSvc.AssertExpectations(t)
}

func TestDocumentHandler_SetStatus_LostRaceReturns409(t *testing.T) {
	h, docSvc, auditSvc := newDocumentHandler()

	docID := uuid.New()
	docSvc.On("SetStatus", mock.Anything, docID, domain.DocumentActive).
		Return(nil, domain.ErrConcurrentModification)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	postJSON(c, "/api/v1/documents/"+docID.String()+"/status", gin.H{"status": "Active"})
	c.Params = gin.Params{{Key: "id", Value: docID.String()}}
	setAuthContext(c, uuid.New(), "hradmin", "admin")

	h.SetStatus(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CONCURRENT_MODIFICATION", resp.Error.Code)
	auditSvc.AssertCalled(t, "Record", mock.Anything, mock.Anything,
		domain.AuditDocumentStatusChange, domain.AuditFailure, mock.Anything)
}

func TestDocumentHandler_SetStatus_ReactivateFlagChangesAuditAction(t *testing.T) {
	h, docSvc, auditSvc := newDocumentHandler()

	docID := uuid.New()
	docSvc.On("SetStatus", mock.Anything, docID, domain.DocumentActive).
		Return(&domain.Document{ID: docID, Status: domain.DocumentActive}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	postJSON(c, "/api/v1/documents/"+docID.String()+"/status", gin.H{"status": "Active", "reactivate": true})
	c.Params = gin.Params{{Key: "id", Value: docID.String()}}
	setAuthContext(c, uuid.New(), "hradmin", "admin")

	h.SetStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
	auditSvc.AssertCalled(t, "Record", mock.Anything, mock.Anything,
		domain.AuditCategoryReactivate, domain.AuditSuccess, mock.Anything)
}

func TestDocumentHandler_SetStatus_InvalidID(t *testing.T) {
	h, _, _ := newDocumentHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/documents/not-a-uuid/status", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	h.SetStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- GetByID ---

func TestDocumentHandler_GetByID_ReturnsPresignedURL(t *testing.T) {
	h, docSvc, _ := newDocumentHandler()

	docID := uuid.New()
	docSvc.On("Get", mock.Anything, docID).Return(&service.DocumentWithURL{
		Document: domain.Document{ID: docID, EmployeeID: "100234"},
		FileURL:  "https://signed.example/doc",
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/documents/"+docID.String(), http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: docID.String()}}
	setAuthContext(c, uuid.New(), "hradmin", "admin")

	h.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://signed.example/doc")
}

func TestDocumentHandler_GetByID_NotFound(t *testing.T) {
	h, docSvc, _ := newDocumentHandler()

	docID := uuid.New()
	docSvc.On("Get", mock.Anything, docID).Return(nil, domain.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/documents/"+docID.String(), http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: docID.String()}}

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- ListForEmployee ---

func TestDocumentHandler_ListForEmployee_InactiveByCategory(t *testing.T) {
	h, docSvc, _ := newDocumentHandler()

	docSvc.On("ListInactive", mock.Anything, "100234", "OFD").Return([]domain.Document{
		{EmployeeID: "100234", CategoryCode: "OFD", Status: domain.DocumentInactive},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet,
		"/api/v1/employees/100234/documents?category=OFD&status=Inactive", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: "100234"}}
	setAuthContext(c, uuid.New(), "hradmin", "admin")

	h.ListForEmployee(c)

	assert.Equal(t, http.StatusOK, w.Code)
	docSvc.AssertExpectations(t)
}

func TestDocumentHandler_ListForEmployee_FiltersCategory(t *testing.T) {
	h, docSvc, _ := newDocumentHandler()

	docSvc.On("ListByEmployee", mock.Anything, "100234").Return([]domain.Document{
		{EmployeeID: "100234", CategoryCode: "OFD", Status: domain.DocumentActive},
		{EmployeeID: "100234", CategoryCode: "JOR", Status: domain.DocumentActive},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet,
		"/api/v1/employees/100234/documents?category=JOR", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: "100234"}}
	setAuthContext(c, uuid.New(), "hradmin", "admin")

	h.ListForEmployee(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	docs := resp.Data.([]interface{})
	assert.Len(t, docs, 1)
}

// --- Search ---

func TestDocumentHandler_Search_ToDateCoversWholeDay(t *testing.T) {
	h, docSvc, _ := newDocumentHandler()

	// A search "to 2026-01-15" must match uploads made during that day, so
	// the repository bound is the midnight that follows it.
	docSvc.On("Search", mock.Anything, mock.MatchedBy(func(f port.DocumentSearchFilter) bool {
		return f.ToDate != nil &&
			f.ToDate.Equal(time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC))
	})).Return([]domain.DocumentView{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/documents?to=2026-01-15", http.NoBody)

	h.Search(c)

	assert.Equal(t, http.StatusOK, w.Code)
	docSvc.AssertExpectations(t)
}

func TestDocumentHandler_Search_BadDate(t *testing.T) {
	h, _, _ := newDocumentHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/documents?from=14-03-2025", http.NoBody)

	h.Search(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
