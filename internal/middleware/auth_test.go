package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"edms/internal/domain"
	"edms/internal/middleware"
	"edms/internal/service"
	"edms/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func authRouter(authSvc service.AuthService, roles ...domain.UserRole) *gin.Engine {
	r := gin.New()
	grp := r.Group("/", middleware.AuthMiddleware(authSvc))
	if len(roles) > 0 {
		grp.Use(middleware.RequireRole(roles...))
	}
	grp.GET("/probe", func(c *gin.Context) {
		userID, _ := middleware.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{
			"user_id":  userID,
			"username": middleware.GetUsername(c),
			"role":     middleware.GetRole(c),
		})
	})
	return r
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := authRouter(new(mocks.MockAuthService))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/probe", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	r := authRouter(new(mocks.MockAuthService))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/probe", http.NoBody)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	authSvc.On("ValidateToken", "bad-token").Return(nil, domain.ErrUnauthorized)

	r := authRouter(authSvc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/probe", http.NoBody)
	req.Header.Set("Authorization", "Bearer bad-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InjectsIdentity(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	userID := uuid.New()
	authSvc.On("ValidateToken", "good-token").Return(&service.Claims{
		UserID:   userID,
		Username: "hradmin",
		Role:     domain.RoleAdmin,
	}, nil)

	r := authRouter(authSvc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/probe", http.NoBody)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
	assert.Contains(t, w.Body.String(), "hradmin")
}

func TestRequireRole_Allows(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	authSvc.On("ValidateToken", mock.Anything).Return(&service.Claims{
		UserID:   uuid.New(),
		Username: "hradmin",
		Role:     domain.RoleAdmin,
	}, nil)

	r := authRouter(authSvc, domain.RoleAdmin)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/probe", http.NoBody)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_Blocks(t *testing.T) {
	authSvc := new(mocks.MockAuthService)
	authSvc.On("ValidateToken", mock.Anything).Return(&service.Claims{
		UserID:   uuid.New(),
		Username: "clerk",
		Role:     domain.RoleStaff,
	}, nil)

	r := authRouter(authSvc, domain.RoleAdmin)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/probe", http.NoBody)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
