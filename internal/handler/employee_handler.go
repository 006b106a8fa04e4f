package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"edms/internal/domain"
	"edms/internal/port"
	"edms/internal/service"
)

// EmployeeHandler handles personnel record endpoints.
type EmployeeHandler struct {
	employeeService service.EmployeeService
	auditService    service.AuditService
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(employeeService service.EmployeeService, auditService service.AuditService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService, auditService: auditService}
}

// Create handles POST /api/v1/employees
// @Summary Register an employee
// @Description Create a personnel record keyed by the externally assigned personnel number
// @Tags employees
// @Accept json
// @Produce json
// @Param request body service.CreateEmployeeInput true "Employee details"
// @Success 201 {object} Response{data=domain.Employee} "Employee created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 409 {object} ErrorResponseBody "Employee ID already exists"
// @Security BearerAuth
// @Router /employees [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var input service.CreateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	emp, err := h.employeeService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, emp)
}

// Index handles GET /api/v1/employees: plain pagination when no filter is
// present, filtered search otherwise.
// @Summary List or search employees
// @Description Without filters, a paginated listing. Any filter parameter switches to conjunctive search; category filters match the computed per-category status
// @Tags employees
// @Produce json
// @Param page query int false "Page number (listing mode)" default(1)
// @Param page_size query int false "Page size, max 100 (listing mode)" default(20)
// @Param q query string false "Search term (ID, name or department)"
// @Param department query string false "Department"
// @Param file_location query string false "File location"
// @Param missing_documents query bool false "Only employees with a Pending required category"
// @Param categories query string false "Comma-separated category codes, each CODE or CODE:Status"
// @Param join_from query string false "Joined on or after (YYYY-MM-DD)"
// @Param join_to query string false "Joined on or before (YYYY-MM-DD)"
// @Success 200 {object} Response{data=[]domain.EmployeeView} "Employees"
// @Failure 400 {object} ErrorResponseBody "Malformed date filter"
// @Security BearerAuth
// @Router /employees [get]
func (h *EmployeeHandler) Index(c *gin.Context) {
	if h.hasSearchParams(c) {
		h.Search(c)
		return
	}
	h.List(c)
}

func (h *EmployeeHandler) hasSearchParams(c *gin.Context) bool {
	for _, key := range []string{"q", "department", "file_location", "missing_documents", "categories", "join_from", "join_to"} {
		if c.Query(key) != "" {
			return true
		}
	}
	return false
}

// List serves the unfiltered, paginated branch of Index.
func (h *EmployeeHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	ctx := c.Request.Context()
	emps, total, err := h.employeeService.List(ctx, page, pageSize)
	if err != nil {
		HandleError(c, err)
		return
	}

	h.auditService.Record(ctx, actorFrom(c),
		domain.AuditEmployeeFetchAll, domain.AuditSuccess, "listed employees")
	RespondPaginated(c, emps, PagMeta{Total: total, Page: page, PageSize: pageSize})
}

// GetByID handles GET /api/v1/employees/:id
// @Summary Get employee by ID
// @Description Return the employee with the computed status of each required category
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID (personnel number)"
// @Success 200 {object} Response{data=domain.EmployeeView} "Employee details"
// @Failure 404 {object} ErrorResponseBody "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [get]
func (h *EmployeeHandler) GetByID(c *gin.Context) {
	view, err := h.employeeService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, view)
}

// Update handles PUT /api/v1/employees/:id
// @Summary Update an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (personnel number)"
// @Param request body service.UpdateEmployeeInput true "Fields to update"
// @Success 200 {object} Response{data=domain.Employee} "Employee updated"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 404 {object} ErrorResponseBody "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [put]
func (h *EmployeeHandler) Update(c *gin.Context) {
	var input service.UpdateEmployeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	emp, err := h.employeeService.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, emp)
}

// UpdateLocation handles PUT /api/v1/employees/:id/location
// @Summary Move the physical personnel file
// @Description Record where the paper file is currently stored
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID (personnel number)"
// @Param request body LocationRequest true "New file location"
// @Success 200 {object} Response{data=MessageResponse} "Location updated"
// @Failure 400 {object} ErrorResponseBody "Unknown location"
// @Failure 404 {object} ErrorResponseBody "Employee not found"
// @Security BearerAuth
// @Router /employees/{id}/location [put]
func (h *EmployeeHandler) UpdateLocation(c *gin.Context) {
	var req struct {
		FileLocation domain.FileLocation `json:"file_location" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	id := c.Param("id")
	ctx := c.Request.Context()
	if err := h.employeeService.UpdateLocation(ctx, id, req.FileLocation); err != nil {
		HandleError(c, err)
		return
	}

	h.auditService.Record(ctx, actorFrom(c),
		domain.AuditDocumentLocationUpdate, domain.AuditSuccess,
		fmt.Sprintf("moved file of employee %s to %s", id, req.FileLocation))
	RespondOK(c, gin.H{"message": "location updated"})
}

// Search serves the filtered branch of Index. Filters are conjunctive.
func (h *EmployeeHandler) Search(c *gin.Context) {
	filter := port.EmployeeSearchFilter{
		SearchTerm:   c.Query("q"),
		Department:   c.Query("department"),
		FileLocation: c.Query("file_location"),
	}
	filter.MissingDocuments, _ = strconv.ParseBool(c.DefaultQuery("missing_documents", "false"))

	if raw := c.Query("categories"); raw != "" {
		filter.CategoryStatus = make(map[string]domain.CategoryStatus)
		for _, part := range strings.Split(raw, ",") {
			// Each entry is CODE or CODE:Status.
			code, status, found := strings.Cut(strings.TrimSpace(part), ":")
			if code == "" {
				continue
			}
			filter.SelectedCategories = append(filter.SelectedCategories, code)
			if found {
				filter.CategoryStatus[code] = domain.CategoryStatus(status)
			}
		}
	}
	if from := c.Query("join_from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid join_from date")
			return
		}
		filter.JoinFromDate = &t
	}
	if to := c.Query("join_to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid join_to date")
			return
		}
		filter.JoinToDate = &t
	}

	ctx := c.Request.Context()
	views, err := h.employeeService.Search(ctx, filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	h.auditService.Record(ctx, actorFrom(c),
		domain.AuditEmployeeSearch, domain.AuditSuccess,
		fmt.Sprintf("employee search returned %d results", len(views)))
	RespondOK(c, views)
}
