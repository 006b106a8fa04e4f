package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"edms/internal/domain"
	"edms/internal/middleware"
	"edms/internal/service"
)

// UserHandler handles operator account management endpoints.
type UserHandler struct {
	userService  service.UserService
	auditService service.AuditService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService, auditService service.AuditService) *UserHandler {
	return &UserHandler{userService: userService, auditService: auditService}
}

// Create handles POST /api/v1/users
// @Summary Create a user
// @Description Create a new operator account (admin only)
// @Tags users
// @Accept json
// @Produce json
// @Param request body service.CreateUserInput true "User details"
// @Success 201 {object} Response{data=domain.User} "User created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden - admin only"
// @Failure 409 {object} ErrorResponseBody "Username already exists"
// @Security BearerAuth
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var input service.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	ctx := c.Request.Context()
	user, err := h.userService.Create(ctx, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	h.auditService.Record(ctx, actorFrom(c),
		domain.AuditUserCreated, domain.AuditSuccess,
		fmt.Sprintf("created user %s (%s)", user.Username, user.Role))
	RespondCreated(c, user)
}

// List handles GET /api/v1/users
// @Summary List users
// @Description List all operator accounts (admin only)
// @Tags users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size (max 100)" default(20)
// @Success 200 {object} Response{data=[]domain.User,meta=PagMeta} "List of users"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Forbidden - admin only"
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	ctx := c.Request.Context()
	users, total, err := h.userService.List(ctx, page, pageSize)
	if err != nil {
		HandleError(c, err)
		return
	}

	h.auditService.Record(ctx, actorFrom(c),
		domain.AuditUserFetchAll, domain.AuditSuccess, "listed users")
	RespondPaginated(c, users, PagMeta{Total: total, Page: page, PageSize: pageSize})
}

// UpdateStatus handles PUT /api/v1/users/:id/status
// @Summary Change user status
// @Description Activate or deactivate an operator account (admin only)
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param request body StatusRequest true "New status"
// @Success 200 {object} Response{data=MessageResponse} "Status updated"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 403 {object} ErrorResponseBody "Forbidden - admin only"
// @Failure 404 {object} ErrorResponseBody "User not found"
// @Security BearerAuth
// @Router /users/{id}/status [put]
func (h *UserHandler) UpdateStatus(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid user ID")
		return
	}

	var req struct {
		Status domain.UserStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	ctx := c.Request.Context()
	if err := h.userService.UpdateStatus(ctx, userID, req.Status); err != nil {
		HandleError(c, err)
		return
	}

	h.auditService.Record(ctx, actorFrom(c),
		domain.AuditUserStatusChange, domain.AuditSuccess,
		fmt.Sprintf("set user %s status to %s", userID, req.Status))
	RespondOK(c, gin.H{"message": "status updated"})
}

// ResetPassword handles PUT /api/v1/users/:id/password
// @Summary Reset a user's password
// @Description Set a new password for an operator account (admin only)
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Param request body PasswordRequest true "New password"
// @Success 200 {object} Response{data=MessageResponse} "Password reset"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 403 {object} ErrorResponseBody "Forbidden - admin only"
// @Failure 404 {object} ErrorResponseBody "User not found"
// @Security BearerAuth
// @Router /users/{id}/password [put]
func (h *UserHandler) ResetPassword(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid user ID")
		return
	}

	var req struct {
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	ctx := c.Request.Context()
	if err := h.userService.ResetPassword(ctx, userID, req.Password); err != nil {
		HandleError(c, err)
		return
	}

	h.auditService.Record(ctx, actorFrom(c),
		domain.AuditUserPasswordReset, domain.AuditSuccess,
		fmt.Sprintf("reset password for user %s", userID))
	RespondOK(c, gin.H{"message": "password reset"})
}

// Delete handles DELETE /api/v1/users/:id
// @Summary Delete a user
// @Description Remove an operator account (admin only, not self)
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "User deleted"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 403 {object} ErrorResponseBody "Forbidden"
// @Failure 404 {object} ErrorResponseBody "User not found"
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid user ID")
		return
	}

	actorID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	ctx := c.Request.Context()
	if err := h.userService.Delete(ctx, actorID, userID); err != nil {
		HandleError(c, err)
		return
	}

	h.auditService.Record(ctx, actorFrom(c),
		domain.AuditUserDeleted, domain.AuditSuccess,
		fmt.Sprintf("deleted user %s", userID))
	RespondOK(c, gin.H{"message": "user deleted"})
}
