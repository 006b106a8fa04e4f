package handler_test

import (
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"edms/internal/middleware"
	"edms/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// setAuthContext injects the operator identity the way AuthMiddleware would.
func setAuthContext(c *gin.Context, userID uuid.UUID, username, role string) {
	c.Set(middleware.ContextKeyUserID, userID)
	c.Set(middleware.ContextKeyUsername, username)
	c.Set(middleware.ContextKeyRole, role)
}

// permissiveAuditService accepts any Record call; individual tests assert the
// calls they care about.
func permissiveAuditService() *mocks.MockAuditService {
	svc := new(mocks.MockAuditService)
	svc.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	return svc
}
