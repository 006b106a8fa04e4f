package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"edms/internal/domain"
	"edms/internal/middleware"
	"edms/internal/port"
	"edms/internal/service"
)

// DocumentHandler handles document lifecycle endpoints.
type DocumentHandler struct {
	documentService service.DocumentService
	auditService    service.AuditService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(documentService service.DocumentService, auditService service.AuditService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService, auditService: auditService}
}

// Upload handles POST /api/v1/documents
// @Summary Upload a document
// @Description Store a PDF for an employee/category pair. The new document always enters Inactive
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param employee_id formData string true "Employee ID (personnel number)"
// @Param category formData string true "Category code"
// @Param other_type formData string false "Free-text label when category is OTH"
// @Param file formData file true "PDF file"
// @Success 201 {object} Response{data=domain.Document} "Document stored"
// @Failure 400 {object} ErrorResponseBody "Validation error or non-PDF upload"
// @Failure 404 {object} ErrorResponseBody "Employee not found"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 502 {object} ErrorResponseBody "Blob storage failure"
// @Security BearerAuth
// @Router /documents [post]
func (h *DocumentHandler) Upload(c *gin.Context) {
	employeeID := c.PostForm("employee_id")
	category := c.PostForm("category")
	if employeeID == "" || category == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "employee_id and category are required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "cannot read uploaded file")
		return
	}
	defer file.Close()

	uploadedBy, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	ctx := c.Request.Context()
	actor := actorFrom(c)
	doc, err := h.documentService.Upload(ctx, service.UploadDocumentInput{
		EmployeeID:   employeeID,
		CategoryCode: category,
		OtherType:    c.PostForm("other_type"),
		FileName:     fileHeader.Filename,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Size:         fileHeader.Size,
		Body:         file,
		UploadedBy:   uploadedBy,
	})
	if err != nil {
		h.auditService.Record(ctx, actor,
			domain.AuditDocumentUpload, domain.AuditFailure,
			fmt.Sprintf("upload of %s/%s failed", employeeID, category))
		HandleError(c, err)
		return
	}

	h.auditService.Record(ctx, actor,
		domain.AuditDocumentUpload, domain.AuditSuccess,
		fmt.Sprintf("uploaded document %s for employee %s category %s", doc.ID, doc.EmployeeID, doc.CategoryCode))
	RespondCreated(c, doc)
}

// SetStatus handles POST /api/v1/documents/:id/status
// @Summary Change a document's status
// @Description Activate or deactivate a document. Omitting the status toggles it. Activation demotes the current Active sibling atomically; a lost race returns 409 and is not retried
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param request body StatusChangeRequest false "Target status; empty body toggles"
// @Success 200 {object} Response{data=domain.Document} "Document after the transition"
// @Failure 400 {object} ErrorResponseBody "Invalid target status"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Failure 409 {object} ErrorResponseBody "Lost a concurrent transition"
// @Security BearerAuth
// @Router /documents/{id}/status [post]
func (h *DocumentHandler) SetStatus(c *gin.Context) {
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	var req struct {
		Status     domain.DocumentStatus `json:"status"`
		Reactivate bool                  `json:"reactivate"`
	}
	// An empty body means toggle.
	_ = c.ShouldBindJSON(&req)

	ctx := c.Request.Context()
	actor := actorFrom(c)

	var doc *domain.Document
	if req.Status == "" {
		doc, err = h.documentService.Toggle(ctx, docID)
	} else {
		doc, err = h.documentService.SetStatus(ctx, docID, req.Status)
	}

	action := domain.AuditDocumentStatusChange
	if req.Reactivate {
		action = domain.AuditCategoryReactivate
	}
	if err != nil {
		h.auditService.Record(ctx, actor, action, domain.AuditFailure,
			fmt.Sprintf("status change of document %s failed", docID))
		HandleError(c, err)
		return
	}

	h.auditService.Record(ctx, actor, action, domain.AuditSuccess,
		fmt.Sprintf("document %s is now %s", doc.ID, doc.Status))
	RespondOK(c, doc)
}

// GetByID handles GET /api/v1/documents/:id
// @Summary View a document
// @Description Return the document metadata with a short-lived presigned file URL
// @Tags documents
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} Response{data=service.DocumentWithURL} "Document with file URL"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Failure 502 {object} ErrorResponseBody "Blob storage failure"
// @Security BearerAuth
// @Router /documents/{id} [get]
func (h *DocumentHandler) GetByID(c *gin.Context) {
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	ctx := c.Request.Context()
	doc, err := h.documentService.Get(ctx, docID)
	if err != nil {
		HandleError(c, err)
		return
	}

	h.auditService.Record(ctx, actorFrom(c),
		domain.AuditDocumentView, domain.AuditSuccess,
		fmt.Sprintf("viewed document %s of employee %s", doc.ID, doc.EmployeeID))
	RespondOK(c, doc)
}

// Search handles GET /api/v1/documents
// @Summary Search documents
// @Description Conjunctive filters over the document register, joined with employee details
// @Tags documents
// @Produce json
// @Param q query string false "Search term (document ID, category, employee name or ID)"
// @Param category query string false "Category code"
// @Param status query string false "Document status (Active or Inactive)"
// @Param from query string false "Uploaded on or after (YYYY-MM-DD)"
// @Param to query string false "Uploaded on or before (YYYY-MM-DD)"
// @Success 200 {object} Response{data=[]domain.DocumentView} "Matching documents"
// @Security BearerAuth
// @Router /documents [get]
func (h *DocumentHandler) Search(c *gin.Context) {
	filter := port.DocumentSearchFilter{
		SearchTerm: c.Query("q"),
		Category:   c.Query("category"),
		Status:     domain.DocumentStatus(c.Query("status")),
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid from date")
			return
		}
		filter.FromDate = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid to date")
			return
		}
		// The named day is included; the query bound is the next midnight.
		t = t.AddDate(0, 0, 1)
		filter.ToDate = &t
	}

	ctx := c.Request.Context()
	views, err := h.documentService.Search(ctx, filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	h.auditService.Record(ctx, actorFrom(c),
		domain.AuditDocumentSearch, domain.AuditSuccess,
		fmt.Sprintf("document search returned %d results", len(views)))
	RespondOK(c, views)
}

// ListForEmployee handles GET /api/v1/employees/:id/documents
// @Summary List an employee's documents
// @Description All uploads of an employee, optionally narrowed to one category and status
// @Tags documents
// @Produce json
// @Param id path string true "Employee ID (personnel number)"
// @Param category query string false "Category code"
// @Param status query string false "Document status (Active or Inactive)"
// @Success 200 {object} Response{data=[]domain.Document} "Documents, newest first"
// @Failure 404 {object} ErrorResponseBody "Employee not found"
// @Security BearerAuth
// @Router /employees/{id}/documents [get]
func (h *DocumentHandler) ListForEmployee(c *gin.Context) {
	employeeID := c.Param("id")
	category := c.Query("category")
	status := domain.DocumentStatus(c.Query("status"))

	ctx := c.Request.Context()
	var docs []domain.Document
	var err error
	if category != "" && status == domain.DocumentInactive {
		docs, err = h.documentService.ListInactive(ctx, employeeID, category)
	} else {
		docs, err = h.documentService.ListByEmployee(ctx, employeeID)
		if err == nil && (category != "" || status != "") {
			filtered := docs[:0]
			for _, d := range docs {
				if category != "" && d.CategoryCode != category {
					continue
				}
				if status != "" && d.Status != status {
					continue
				}
				filtered = append(filtered, d)
			}
			docs = filtered
		}
	}
	if err != nil {
		HandleError(c, err)
		return
	}

	h.auditService.Record(ctx, actorFrom(c),
		domain.AuditDocumentFetch, domain.AuditSuccess,
		fmt.Sprintf("fetched documents of employee %s", employeeID))
	RespondOK(c, docs)
}
