package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"edms/internal/domain"
	"edms/internal/middleware"
	"edms/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService  service.AuthService
	userService  service.UserService
	auditService service.AuditService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	authService service.AuthService,
	userService service.UserService,
	auditService service.AuditService,
) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		userService:  userService,
		auditService: auditService,
	}
}

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Description Authenticate with username and password, returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.LoginInput true "Credentials"
// @Success 200 {object} Response{data=LoginResponse} "Token and user"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Invalid credentials"
// @Failure 403 {object} ErrorResponseBody "User inactive"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input service.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	ctx := c.Request.Context()
	tokens, user, err := h.authService.Login(ctx, input)
	if err != nil {
		// Failed attempts are audited too, with the claimed username.
		h.auditService.Record(ctx,
			service.Actor{Username: input.Username, IP: c.ClientIP()},
			domain.AuditUserLogin, domain.AuditFailure,
			fmt.Sprintf("login failed for %q", input.Username))
		HandleError(c, err)
		return
	}

	h.auditService.Record(ctx,
		service.Actor{UserID: &user.ID, Username: user.Username, IP: c.ClientIP()},
		domain.AuditUserLogin, domain.AuditSuccess,
		fmt.Sprintf("%s logged in", user.Username))

	RespondOK(c, gin.H{"tokens": tokens, "user": user})
}

// Refresh handles POST /api/v1/auth/refresh
// @Summary Refresh tokens
// @Description Exchange a refresh token for a fresh token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} Response{data=service.TokenPair} "New token pair"
// @Failure 401 {object} ErrorResponseBody "Invalid or expired refresh token"
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	tokens, err := h.authService.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, tokens)
}

// Logout handles POST /api/v1/auth/logout
// @Summary Log out
// @Description Record a logout; the token itself is stateless and simply discarded client-side
// @Tags auth
// @Produce json
// @Success 200 {object} Response{data=MessageResponse} "Logged out"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	actor := actorFrom(c)
	h.auditService.Record(c.Request.Context(), actor,
		domain.AuditUserLogout, domain.AuditSuccess,
		fmt.Sprintf("%s logged out", actor.Username))
	RespondOK(c, gin.H{"message": "logged out"})
}

// Me handles GET /api/v1/auth/me
// @Summary Current user
// @Description Return the account behind the presented token
// @Tags auth
// @Produce json
// @Success 200 {object} Response{data=domain.User} "Current user"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	ctx := c.Request.Context()
	user, err := h.userService.GetByID(ctx, userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	h.auditService.Record(ctx, actorFrom(c),
		domain.AuditAuthCheck, domain.AuditSuccess,
		fmt.Sprintf("token check for %s", user.Username))
	RespondOK(c, user)
}
