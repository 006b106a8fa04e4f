package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"edms/internal/domain"
	"edms/internal/handler"
	"edms/internal/service"
	"edms/mocks"
)

func newCategoryHandler() (*handler.CategoryHandler, *mocks.MockCategoryService, *mocks.MockAuditService) {
	catSvc := new(mocks.MockCategoryService)
	auditSvc := permissiveAuditService()
	h := handler.NewCategoryHandler(catSvc, auditSvc)
	return h, catSvc, auditSvc
}

func TestCategoryHandler_Add_Success(t *testing.T) {
	h, catSvc, auditSvc := newCategoryHandler()

	catSvc.On("Add", mock.Anything, service.AddCategoryInput{
		EmployeeID:   "100234",
		CategoryCode: "JOR",
	}).Return(&domain.RequiredCategory{
		ID:            uuid.New(),
		EmployeeID:    "100234",
		CategoryCode:  "JOR",
		CategoryLabel: "Joining Report",
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	postJSON(c, "/api/v1/employees/100234/required-categories", gin.H{"category": "JOR"})
	c.Params = gin.Params{{Key: "id", Value: "100234"}}
	setAuthContext(c, uuid.New(), "hradmin", "admin")

	h.Add(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	auditSvc.AssertCalled(t, "Record", mock.Anything, mock.Anything,
		domain.AuditCategoryAdd, domain.AuditSuccess, mock.Anything)
	catSvc.AssertExpectations(t)
}

func TestCategoryHandler_Add_Duplicate(t *testing.T) {
	h, catSvc, _ := newCategoryHandler()

	catSvc.On("Add", mock.Anything, mock.AnythingOfType("service.AddCategoryInput")).
		Return(nil, domain.ErrDuplicateCategory)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	postJSON(c, "/api/v1/employees/100234/required-categories", gin.H{"category": "JOR"})
	c.Params = gin.Params{{Key: "id", Value: "100234"}}

	h.Add(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "DUPLICATE_CATEGORY", resp.Error.Code)
}

func TestCategoryHandler_Add_MissingCategory(t *testing.T) {
	h, _, _ := newCategoryHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	postJSON(c, "/api/v1/employees/100234/required-categories", gin.H{})
	c.Params = gin.Params{{Key: "id", Value: "100234"}}

	h.Add(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCategoryHandler_Remove_Success(t *testing.T) {
	h, catSvc, auditSvc := newCategoryHandler()

	bindingID := uuid.New()
	catSvc.On("RemoveByID", mock.Anything, bindingID).Return(&domain.RequiredCategory{
		ID:           bindingID,
		EmployeeID:   "100234",
		CategoryCode: "JOR",
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/required-categories/"+bindingID.String(), http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: bindingID.String()}}
	setAuthContext(c, uuid.New(), "hradmin", "admin")

	h.Remove(c)

	assert.Equal(t, http.StatusOK, w.Code)
	auditSvc.AssertCalled(t, "Record", mock.Anything, mock.Anything,
		domain.AuditCategoryDelete, domain.AuditSuccess, mock.Anything)
}

func TestCategoryHandler_Remove_InvalidID(t *testing.T) {
	h, _, _ := newCategoryHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/required-categories/JOR", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: "JOR"}}

	h.Remove(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCategoryHandler_ListRequired(t *testing.T) {
	h, catSvc, _ := newCategoryHandler()

	catSvc.On("ListRequired", mock.Anything, "100234").Return([]domain.RequiredCategoryView{
		{CategoryCode: "OFD", Status: domain.CategoryActive},
		{CategoryCode: "JOR", Status: domain.CategoryPending},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/employees/100234/required-categories", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: "100234"}}
	setAuthContext(c, uuid.New(), "hradmin", "admin")

	h.ListRequired(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Pending")
}
