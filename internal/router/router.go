package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "edms/docs"
	"edms/internal/config"
	"edms/internal/domain"
	"edms/internal/handler"
	"edms/internal/middleware"
	"edms/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	documentH *handler.DocumentHandler,
	employeeH *handler.EmployeeHandler,
	categoryH *handler.CategoryHandler,
	userH *handler.UserHandler,
	logH *handler.LogHandler,
	statsH *handler.StatsHandler,
	exportH *handler.ExportHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.Refresh)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	protected.POST("/auth/logout", authH.Logout)
	protected.GET("/auth/me", authH.Me)

	// Documents
	documents := protected.Group("/documents")
	documents.POST("", documentH.Upload)
	documents.GET("", documentH.Search)
	documents.GET("/:id", documentH.GetByID)
	documents.POST("/:id/status", documentH.SetStatus)

	// Employees and their required categories
	employees := protected.Group("/employees")
	employees.GET("", employeeH.Index)
	employees.POST("", middleware.RequireRole(domain.RoleAdmin), employeeH.Create)
	employees.GET("/:id", employeeH.GetByID)
	employees.PUT("/:id", middleware.RequireRole(domain.RoleAdmin), employeeH.Update)
	employees.PUT("/:id/location", employeeH.UpdateLocation)
	employees.GET("/:id/documents", documentH.ListForEmployee)
	employees.GET("/:id/required-categories", categoryH.ListRequired)
	employees.POST("/:id/required-categories", categoryH.Add)

	protected.DELETE("/required-categories/:id", categoryH.Remove)

	// Audit trail and dashboard
	protected.GET("/logs", middleware.RequireRole(domain.RoleAdmin), logH.List)
	protected.GET("/dashboard-stats", statsH.Dashboard)

	// Register exports
	export := protected.Group("/export")
	export.GET("/documents.csv", exportH.DocumentsCSV)
	export.GET("/employees.xlsx", exportH.EmployeesXLSX)

	// User management (admin only)
	users := protected.Group("/users")
	users.Use(middleware.RequireRole(domain.RoleAdmin))
	users.POST("", userH.Create)
	users.GET("", userH.List)
	users.PUT("/:id/status", userH.UpdateStatus)
	users.PUT("/:id/password", userH.ResetPassword)
	users.DELETE("/:id", userH.Delete)

	return r
}
